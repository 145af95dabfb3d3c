package grid

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Standard closed form node families. The basis constructors never choose a
// family, callers do.

var ErrUnknownFamily = errors.New("grid: unknown node family")

type NodeType string

const (
	Equi    = NodeType("Equispaced")
	Cheb    = NodeType("Chebyshev")
	Lobatto = NodeType("Lobatto")
)

// FromFamily builds the n point node set of the named family on iv. The
// family name is matched case insensitively.
func FromFamily(nt NodeType, n int, iv Interval) (Grid, error) {
	switch strings.ToLower(string(nt)) {
	case "equispaced":
		return Equispaced(n, iv)
	case "chebyshev":
		return ChebyshevGauss(n, iv)
	case "lobatto":
		return ChebyshevLobatto(n, iv)
	}
	return Grid{}, fmt.Errorf("%w: %q", ErrUnknownFamily, nt)
}

// Equispaced returns n uniformly spaced nodes including both endpoints. A
// single node sits at the midpoint.
func Equispaced(n int, iv Interval) (Grid, error) {
	if n < 1 {
		return Grid{}, ErrEmpty
	}
	nodes := make([]float64, n)
	if n == 1 {
		nodes[0] = iv.Left + 0.5*iv.Length()
		return New(nodes, iv)
	}
	h := iv.Length() / float64(n-1)
	for i := range nodes {
		nodes[i] = iv.Left + float64(i)*h
	}
	nodes[n-1] = iv.Right // guard the top end against accumulated roundoff
	return New(nodes, iv)
}

// ChebyshevGauss returns the n Chebyshev points of the first kind mapped to
// iv, ascending. All nodes are interior.
func ChebyshevGauss(n int, iv Interval) (Grid, error) {
	if n < 1 {
		return Grid{}, ErrEmpty
	}
	var (
		nodes = make([]float64, n)
		c     = iv.Left + 0.5*iv.Length()
		r     = 0.5 * iv.Length()
	)
	for i := 0; i < n; i++ {
		theta := math.Pi * (2.*float64(i) + 1.) / (2. * float64(n))
		nodes[n-1-i] = c + r*math.Cos(theta)
	}
	return New(nodes, iv)
}

// ChebyshevLobatto returns the n Chebyshev points of the second kind mapped
// to iv, ascending, endpoints included.
func ChebyshevLobatto(n int, iv Interval) (Grid, error) {
	if n < 1 {
		return Grid{}, ErrEmpty
	}
	nodes := make([]float64, n)
	if n == 1 {
		nodes[0] = iv.Left + 0.5*iv.Length()
		return New(nodes, iv)
	}
	var (
		c = iv.Left + 0.5*iv.Length()
		r = 0.5 * iv.Length()
	)
	for i := 0; i < n; i++ {
		theta := math.Pi * float64(i) / float64(n-1)
		nodes[n-1-i] = c + r*math.Cos(theta)
	}
	nodes[0], nodes[n-1] = iv.Left, iv.Right
	return New(nodes, iv)
}
