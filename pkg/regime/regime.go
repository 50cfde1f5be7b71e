// Package regime labels a rewiring probability with the network regime it
// produces in the Watts-Strogatz model.
//
// The label depends only on beta: the two endpoints of the interval are the
// ring lattice and the random graph, everything strictly between them is a
// small-world network.
package regime

// Category is the human-readable label of a network regime.
type Category string

const (
	Regular    Category = "Regular network (Ring lattice)"
	Random     Category = "Random network"
	SmallWorld Category = "Small-world network"
)

// Classify returns the regime for beta. Only the exact values 0 and 1 map to
// [Regular] and [Random].
func Classify(beta float64) Category {
	switch beta {
	case 0:
		return Regular
	case 1:
		return Random
	default:
		return SmallWorld
	}
}

// All lists the categories from least to most random.
func All() []Category {
	return []Category{Regular, SmallWorld, Random}
}

// String implements fmt.Stringer.
func (c Category) String() string { return string(c) }
