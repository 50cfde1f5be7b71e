package circular

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/smallworld/pkg/errors"
	"github.com/matzehuels/smallworld/pkg/experiment"
	"github.com/matzehuels/smallworld/pkg/observability"
)

// Image formats.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
	FormatDOT = "dot"
)

// ValidFormats is the set of supported image formats.
var ValidFormats = map[string]bool{
	FormatPNG: true,
	FormatSVG: true,
	FormatDOT: true,
}

// ValidateFormats checks that formats is non-empty and every entry is known.
func ValidateFormats(formats []string) error {
	if len(formats) == 0 {
		return errors.New(errors.ErrCodeInvalidFormat, "at least one image format is required")
	}
	for _, f := range formats {
		if !ValidFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "unknown image format %q (valid: png, svg, dot)", f)
		}
	}
	return nil
}

// Visualizer renders experiment entries as circular-layout images.
type Visualizer struct {
	Options Options
	Logger  *log.Logger
}

// NewVisualizer creates a visualizer. A nil logger uses the default logger.
func NewVisualizer(logger *log.Logger) *Visualizer {
	if logger == nil {
		logger = log.Default()
	}
	return &Visualizer{Logger: logger}
}

// Render draws one entry in format. The caption carries beta and both
// metrics.
func (v *Visualizer) Render(ctx context.Context, e experiment.Entry, format string) ([]byte, error) {
	if err := Check(e.Graph.NodeCount()); err != nil {
		return nil, err
	}
	if err := ValidateFormats([]string{format}); err != nil {
		return nil, err
	}

	opts := v.Options
	opts.Title = Title(e.Beta, e.Metrics.AvgPathLength, e.Metrics.Clustering)
	dot := ToDOT(e.Graph, Layout(e.Graph.NodeCount()), opts)

	start := time.Now()
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatSVG:
		data, err = RenderSVG(ctx, dot)
	case FormatPNG:
		data, err = RenderPNG(ctx, dot)
	case FormatDOT:
		data = []byte(dot)
	}
	observability.Experiment().OnRenderComplete(ctx, e.Beta, format, len(data), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// WriteAll writes graph{idx}.{format} into dir for every entry and format,
// and returns the written paths. The node limit is checked before anything
// is written.
func (v *Visualizer) WriteAll(ctx context.Context, res *experiment.Result, dir string, formats []string) ([]string, error) {
	if err := Check(res.Params.N); err != nil {
		return nil, err
	}
	if err := ValidateFormats(formats); err != nil {
		return nil, err
	}
	if err := errors.ValidatePath(dir); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var paths []string
	for _, e := range res.Entries {
		for _, format := range formats {
			if err := ctx.Err(); err != nil {
				return paths, err
			}
			data, err := v.Render(ctx, e, format)
			if err != nil {
				return paths, fmt.Errorf("render beta %v: %w", e.Beta, err)
			}
			path := filepath.Join(dir, fmt.Sprintf("graph%d.%s", e.Index, format))
			if err := os.WriteFile(path, data, 0644); err != nil {
				return paths, fmt.Errorf("write %s: %w", path, err)
			}
			v.Logger.Debug("wrote image", "beta", e.Beta, "path", path, "bytes", len(data))
			paths = append(paths, path)
		}
	}
	return paths, nil
}
