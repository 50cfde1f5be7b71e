package experiment

import (
	"github.com/matzehuels/smallworld/pkg/builder"
	"github.com/matzehuels/smallworld/pkg/errors"
)

// Default demo parameters.
const (
	DefaultN = 20
	DefaultK = 4
)

// DefaultBetas are the rewiring probabilities of the demo run.
var DefaultBetas = []float64{0, 0.2, 0.4, 1}

// Params describes one experiment.
type Params struct {
	N     int       `json:"n" yaml:"n" toml:"n"`
	K     int       `json:"k" yaml:"k" toml:"k"`
	Betas []float64 `json:"betas" yaml:"betas" toml:"betas"`

	// Seed makes the run reproducible. Nil picks a random seed, which is
	// recorded in [Result.Seed].
	Seed *uint64 `json:"seed,omitempty" yaml:"seed,omitempty" toml:"seed,omitempty"`

	// Parallel is the number of betas generated concurrently. 0 and 1 both
	// mean sequential.
	Parallel int `json:"parallel,omitempty" yaml:"parallel,omitempty" toml:"parallel,omitempty"`

	// Empirical also computes the clustering coefficient of the realized
	// graph.
	Empirical bool `json:"empirical,omitempty" yaml:"empirical,omitempty" toml:"empirical,omitempty"`
}

// SingleBeta returns parameters for a single rewiring probability.
func SingleBeta(n, k int, beta float64) Params {
	return Params{N: n, K: k, Betas: []float64{beta}}
}

// WithSeed returns a copy of p with the seed set.
func (p Params) WithSeed(seed uint64) Params {
	p.Seed = &seed
	return p
}

// Validate checks every field. It is called by the runner before any graph
// is built.
func (p Params) Validate() error {
	if err := builder.ValidateLattice(p.N, p.K); err != nil {
		return err
	}
	if err := errors.ValidateBetas(p.Betas); err != nil {
		return err
	}
	if p.Parallel < 0 {
		return errors.New(errors.ErrCodeInvalidParameter, "parallel must not be negative, got %d", p.Parallel)
	}
	return nil
}

func (p Params) parallel() bool { return p.Parallel > 1 }
