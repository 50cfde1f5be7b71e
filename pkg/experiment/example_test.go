package experiment_test

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/smallworld/pkg/experiment"
)

func ExampleRunner_Run() {
	runner := experiment.NewRunner(nil, nil, log.New(io.Discard))
	params := experiment.Params{N: 20, K: 4, Betas: []float64{0, 1}}.WithSeed(42)

	res, err := runner.Run(context.Background(), params)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	for _, e := range res.Entries {
		fmt.Printf("beta=%v C=%.2f %s\n", e.Beta, e.Metrics.Clustering, e.Metrics.Category)
	}
	// Output:
	// beta=0 C=0.50 Regular network (Ring lattice)
	// beta=1 C=0.20 Random network
}
