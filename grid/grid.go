// Package grid holds ordered point sets on a closed reference interval,
// the node containers consumed by the basis constructors.
package grid

import (
	"errors"
	"fmt"

	"github.com/ToBlick/gobasis/utils"
)

var (
	ErrEmpty           = errors.New("grid: node set is empty")
	ErrBadInterval     = errors.New("grid: interval left bound must be below right bound")
	ErrOutsideInterval = errors.New("grid: node lies outside the interval")
)

// Interval is a closed reference interval [Left, Right].
type Interval struct {
	Left, Right float64
}

func NewInterval(left, right float64) (iv Interval, err error) {
	if left >= right {
		err = fmt.Errorf("%w: [%v, %v]", ErrBadInterval, left, right)
		return
	}
	iv = Interval{Left: left, Right: right}
	return
}

func (iv Interval) Length() float64 { return iv.Right - iv.Left }

// Contains reports closed membership, with a tolerance scaled by the
// interval length to absorb roundoff in computed node locations.
func (iv Interval) Contains(x float64) bool {
	tol := utils.NODETOL * iv.Length()
	return x >= iv.Left-tol && x <= iv.Right+tol
}

// Sample returns n uniformly spaced sample points over the closed interval,
// endpoints included. Fewer than two points are promoted to two.
func (iv Interval) Sample(n int) []float64 {
	if n < 2 {
		n = 2
	}
	var (
		xs = make([]float64, n)
		h  = iv.Length() / float64(n-1)
	)
	for p := range xs {
		xs[p] = iv.Left + float64(p)*h
	}
	xs[n-1] = iv.Right
	return xs
}

// Grid is an immutable node set inside a reference interval. Nodes keep the
// order they were given in, distinctness is the basis constructor's concern.
type Grid struct {
	nodes []float64
	iv    Interval
}

func New(nodes []float64, iv Interval) (g Grid, err error) {
	if iv.Left >= iv.Right {
		err = fmt.Errorf("%w: [%v, %v]", ErrBadInterval, iv.Left, iv.Right)
		return
	}
	if len(nodes) == 0 {
		err = ErrEmpty
		return
	}
	for i, x := range nodes {
		if !iv.Contains(x) {
			err = fmt.Errorf("%w: node[%d] = %v, interval [%v, %v]", ErrOutsideInterval, i, x, iv.Left, iv.Right)
			return
		}
	}
	data := make([]float64, len(nodes))
	copy(data, nodes)
	g = Grid{nodes: data, iv: iv}
	return
}

func (g Grid) Len() int           { return len(g.nodes) }
func (g Grid) Node(i int) float64 { return g.nodes[i] }
func (g Grid) Interval() Interval { return g.iv }

// Nodes returns a copy of the node locations.
func (g Grid) Nodes() []float64 {
	data := make([]float64, len(g.nodes))
	copy(data, g.nodes)
	return data
}

// Vector returns the node locations as a dense vector.
func (g Grid) Vector() utils.Vector {
	return utils.NewVector(len(g.nodes), g.Nodes())
}

// Spacings returns the n-1 gaps between consecutive nodes.
func (g Grid) Spacings() []float64 {
	if len(g.nodes) < 2 {
		return nil
	}
	gaps := make([]float64, len(g.nodes)-1)
	for i := range gaps {
		gaps[i] = g.nodes[i+1] - g.nodes[i]
	}
	return gaps
}

// MapTo rebuilds the grid on a new interval through the affine map taking
// the current interval onto iv.
func (g Grid) MapTo(iv Interval) (Grid, error) {
	if iv.Left >= iv.Right {
		return Grid{}, fmt.Errorf("%w: [%v, %v]", ErrBadInterval, iv.Left, iv.Right)
	}
	var (
		scale = iv.Length() / g.iv.Length()
		nodes = make([]float64, len(g.nodes))
	)
	for i, x := range g.nodes {
		nodes[i] = iv.Left + (x-g.iv.Left)*scale
	}
	return New(nodes, iv)
}
