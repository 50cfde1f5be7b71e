package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/smallworld/pkg/errors"
	"github.com/matzehuels/smallworld/pkg/graph"
	"github.com/matzehuels/smallworld/pkg/metrics"
	"github.com/matzehuels/smallworld/pkg/regime"
)

// measureCommand creates the measure command for graph JSON files.
func (c *CLI) measureCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "measure [graph.json]",
		Short: "Compute metrics of a graph JSON file",
		Long: `Compute the average shortest path length and the empirical clustering
coefficient of a graph written by 'generate'.

When the file records k and beta, the closed-form clustering approximation
and the network category are shown as well.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			g, meta, err := graph.ReadGraphFile(args[0])
			if err != nil {
				return fmt.Errorf("load graph %s: %w", args[0], err)
			}
			logger.Debug("loaded graph", "nodes", g.NodeCount(), "edges", g.EdgeCount())

			printKeyValue("nodes", strconv.Itoa(g.NodeCount()))
			printKeyValue("edges", strconv.Itoa(g.EdgeCount()))

			l, err := metrics.AverageShortestPathLength(g)
			switch {
			case err == nil:
				printKeyValue("avg path", formatFloat(l))
			case errors.Is(err, errors.ErrCodeDisconnectedGraph), errors.Is(err, errors.ErrCodeInvalidParameter):
				printKeyValue("avg path", StyleWarning.Render("undefined ("+errors.UserMessage(err)+")"))
			default:
				return err
			}
			printKeyValue("clustering", formatFloat(metrics.EmpiricalClustering(g)))

			k, kOK := metaNumber(meta, "k")
			beta, betaOK := metaNumber(meta, "beta")
			if kOK && betaOK {
				printKeyValue("approx", formatFloat(metrics.ClusteringApprox(g.NodeCount(), int(k), beta)))
				printKeyValue("category", string(regime.Classify(beta)))
			}
			return nil
		},
	}
}

// metaNumber reads a numeric meta value. JSON numbers decode as float64.
func metaNumber(meta graph.Meta, key string) (float64, bool) {
	v, ok := meta[key].(float64)
	return v, ok
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
