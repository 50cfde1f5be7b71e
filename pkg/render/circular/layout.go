package circular

import (
	"math"

	"github.com/matzehuels/smallworld/pkg/errors"
)

// MaxNodes is the largest graph the visualizer will draw.
const MaxNodes = 5000

// Point is a position on the unit circle.
type Point struct {
	X, Y float64
}

// Layout returns the circular positions of n nodes in node-id order.
func Layout(n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{X: math.Cos(theta), Y: math.Sin(theta)}
	}
	return pts
}

// Check returns a *errors.GraphTooLargeError when n exceeds [MaxNodes].
func Check(n int) error {
	if n > MaxNodes {
		return &errors.GraphTooLargeError{Nodes: n, Limit: MaxNodes}
	}
	return nil
}
