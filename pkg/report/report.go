// Package report prints experiment results.
//
// Two formats are supported: a fixed-width text table for terminals and a
// JSON document for scripts.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/matzehuels/smallworld/pkg/errors"
	"github.com/matzehuels/smallworld/pkg/experiment"
)

// Report formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// ValidFormats is the set of supported report formats.
var ValidFormats = map[string]bool{
	FormatTable: true,
	FormatJSON:  true,
}

// ValidateFormat checks that format is a supported report format.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "unknown report format %q (valid: table, json)", format)
	}
	return nil
}

// Write writes res in the given format.
func Write(w io.Writer, res *experiment.Result, format string) error {
	if err := ValidateFormat(format); err != nil {
		return err
	}
	if format == FormatJSON {
		return WriteJSON(w, res)
	}
	return WriteTable(w, res)
}

// Column widths: beta is left-aligned, the rest right-aligned.
const (
	widthBeta   = 5
	widthPath   = 20
	widthColumn = 30
)

// WriteTable writes the node count, the degree and one row per entry.
//
//	Number of nodes: 20
//	K: 4
//	beta  |   avg shortest path |        clustering coefficient |              network category
//	0     |  2.8947368421052633 |                           0.5 |Regular network (Ring lattice)
//
// An extra "empirical clustering" column is appended when the run measured it.
func WriteTable(w io.Writer, res *experiment.Result) error {
	empirical := hasEmpirical(res)

	var b strings.Builder
	fmt.Fprintf(&b, "Number of nodes: %d\n", res.Params.N)
	fmt.Fprintf(&b, "K: %d\n", res.Params.K)
	b.WriteString(row(empirical, "beta", "avg shortest path", "clustering coefficient", "network category", "empirical clustering"))

	for _, e := range res.Entries {
		emp := ""
		if e.Metrics.EmpiricalClustering != nil {
			emp = formatMetric(*e.Metrics.EmpiricalClustering)
		}
		b.WriteString(row(empirical,
			formatBeta(e.Beta),
			formatMetric(e.Metrics.AvgPathLength),
			formatMetric(e.Metrics.Clustering),
			string(e.Metrics.Category),
			emp))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func row(empirical bool, beta, path, clustering, category, emp string) string {
	s := fmt.Sprintf("%-*s |%*s |%*s |%*s", widthBeta, beta, widthPath, path, widthColumn, clustering, widthColumn, category)
	if empirical {
		s += fmt.Sprintf(" |%*s", widthColumn, emp)
	}
	return s + "\n"
}

func hasEmpirical(res *experiment.Result) bool {
	for _, e := range res.Entries {
		if e.Metrics.EmpiricalClustering != nil {
			return true
		}
	}
	return false
}

// formatBeta prints beta as given: 0, 0.2, 1.
func formatBeta(beta float64) string {
	return strconv.FormatFloat(beta, 'f', -1, 64)
}

// formatMetric prints the shortest exact decimal and keeps a fractional
// part on whole numbers, so 1 prints as 1.0.
func formatMetric(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

// Document is the JSON report.
type Document struct {
	RunID string `json:"run_id"`
	Seed  uint64 `json:"seed"`
	N     int    `json:"n"`
	K     int    `json:"k"`
	Rows  []Row  `json:"rows"`
}

// Row is one beta of the JSON report.
type Row struct {
	Beta                float64  `json:"beta"`
	AvgPathLength       float64  `json:"avg_path_length"`
	Clustering          float64  `json:"clustering"`
	EmpiricalClustering *float64 `json:"empirical_clustering,omitempty"`
	Category            string   `json:"category"`
	Edges               int      `json:"edges"`
	Cached              bool     `json:"cached,omitempty"`
}

// NewDocument converts a result into its JSON report form.
func NewDocument(res *experiment.Result) Document {
	doc := Document{
		RunID: res.RunID,
		Seed:  res.Seed,
		N:     res.Params.N,
		K:     res.Params.K,
		Rows:  make([]Row, 0, len(res.Entries)),
	}
	for _, e := range res.Entries {
		r := Row{
			Beta:                e.Beta,
			AvgPathLength:       e.Metrics.AvgPathLength,
			Clustering:          e.Metrics.Clustering,
			EmpiricalClustering: e.Metrics.EmpiricalClustering,
			Category:            string(e.Metrics.Category),
			Cached:              e.Cached,
		}
		if e.Graph != nil {
			r.Edges = e.Graph.EdgeCount()
		}
		doc.Rows = append(doc.Rows, r)
	}
	return doc
}

// WriteJSON writes res as an indented JSON document.
func WriteJSON(w io.Writer, res *experiment.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(res))
}
