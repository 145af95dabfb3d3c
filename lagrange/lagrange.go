// Package lagrange implements the Lagrange interpolation basis over a fixed
// node set: the polynomials l_i with l_i(x_j) = delta_ij for nodes x_j.
//
// Construction precomputes the reciprocal node differences, the per node
// denominators and the inverse Vandermonde matrix once. Evaluation consumes
// the tables and never divides by a node difference again, so the only place
// a degenerate node set can surface is the constructor.
package lagrange

import (
	"errors"
	"fmt"

	"github.com/ToBlick/gobasis/grid"
	"github.com/ToBlick/gobasis/poly"
	"github.com/ToBlick/gobasis/utils"
)

var (
	ErrEmpty         = errors.New("lagrange: basis needs at least one node")
	ErrDuplicateNode = errors.New("lagrange: nodes must be distinct")
)

// Basis is a Lagrange interpolation basis over a fixed node set. All fields
// are read only after construction, so one instance can serve concurrent
// evaluations without locking.
type Basis struct {
	N      int           // Polynomial order, Np-1
	Np     int           // Number of nodes
	R      utils.Vector  // Nodal coordinates
	Domain grid.Interval // Reference interval containing the nodes
	Denom  []float64     // Denom[i] = prod over j != i of 1/(R[i]-R[j])
	Diffs  utils.Matrix  // Diffs[i,j] = 1/(R[i]-R[j]), diagonal unused
	VDMInv utils.Matrix  // Inverse Vandermonde, rows by node, columns by power
}

// New builds the basis over the nodes in g. It fails with ErrDuplicateNode
// when two nodes coincide, the only node configuration that would put a
// reciprocal of zero into the difference tables.
func New(g grid.Grid) (lb *Basis, err error) {
	var (
		np = g.Len()
	)
	if np == 0 {
		err = ErrEmpty
		return
	}
	lb = &Basis{
		N:      np - 1,
		Np:     np,
		R:      g.Vector(),
		Domain: g.Interval(),
		Denom:  make([]float64, np),
		Diffs:  utils.NewMatrix(np, np),
	}
	var (
		r     = lb.R.DataP
		diffs = lb.Diffs.DataP
	)
	for i := range lb.Denom {
		lb.Denom[i] = 1
	}
	// One pass over node pairs fills both triangular halves of Diffs and
	// accumulates the denominators
	for i := 1; i < np; i++ {
		for j := 0; j < i; j++ {
			d := r[i] - r[j]
			if d == 0 {
				return nil, fmt.Errorf("%w: nodes %d and %d both equal %v", ErrDuplicateNode, j, i, r[i])
			}
			rd := 1. / d
			diffs[i*np+j] = rd
			diffs[j*np+i] = -rd
			lb.Denom[i] *= rd
			lb.Denom[j] *= -rd
		}
	}
	V := utils.NewMatrix(np, np)
	col := make([]float64, np)
	for k := 0; k < np; k++ {
		for i := 0; i < np; i++ {
			col[i] = utils.POW(r[i], k)
		}
		V.SetCol(k, col)
	}
	// Distinct nodes make V nonsingular, a failure here is passed up rather
	// than swallowed
	if lb.VDMInv, err = V.Inverse(); err != nil {
		return nil, fmt.Errorf("lagrange: vandermonde inversion: %w", err)
	}
	lb.Diffs.SetReadOnly("Diffs")
	lb.VDMInv.SetReadOnly("VDMInv")
	return
}

// NewFromNodes validates the nodes against the interval and builds the
// basis in one step.
func NewFromNodes(nodes []float64, iv grid.Interval) (*Basis, error) {
	g, err := grid.New(nodes, iv)
	if err != nil {
		return nil, err
	}
	return New(g)
}

// Len returns the number of basis functions.
func (lb *Basis) Len() int { return lb.Np }

// Support returns the reference interval the basis lives on.
func (lb *Basis) Support() grid.Interval { return lb.Domain }

// EvalElement evaluates basis function i at x as the product of node
// differences times the precomputed denominator. The element index is not
// validated, callers guarantee 0 <= i < Np. x may lie anywhere, including
// outside the reference interval.
func (lb *Basis) EvalElement(i int, x float64) (le float64) {
	var (
		r = lb.R.DataP
	)
	le = lb.Denom[i]
	for j := range r {
		if j == i {
			continue
		}
		le *= x - r[j]
	}
	return
}

// EvalElementDeriv evaluates the first derivative of basis function i at x
// as a sum of products over the reciprocal difference table. No fresh
// division happens per call. With a single node the sum is empty and the
// derivative is zero. The element index is not validated.
func (lb *Basis) EvalElementDeriv(i int, x float64) (dle float64) {
	var (
		r     = lb.R.DataP
		diffs = lb.Diffs.DataP
		np    = lb.Np
	)
	for l := 0; l < np; l++ {
		if l == i {
			continue
		}
		term := diffs[i*np+l]
		for k := 0; k < np; k++ {
			if k == i || k == l {
				continue
			}
			term *= (x - r[k]) * diffs[i*np+k]
		}
		dle += term
	}
	return
}

// EvalElementAntideriv evaluates the antiderivative of basis function i at
// x, normalized to vanish at the left end of the reference interval. The
// monomial coefficients come out of the inverse Vandermonde matrix and are
// integrated term by term. The element index is not validated.
func (lb *Basis) EvalElementAntideriv(i int, x float64) float64 {
	q := lb.Coefficients(i).Integrate()
	return q.Eval(x) - q.Eval(lb.Domain.Left)
}

// Coefficients returns the monomial coefficients of basis function i in
// ascending power order. Column i of the inverse Vandermonde matrix holds
// them directly.
func (lb *Basis) Coefficients(i int) poly.Polynomial {
	c := lb.VDMInv.Col(i)
	return poly.New(c.DataP...)
}

// Interpolate evaluates the interpolant through the nodal values vals at x.
func (lb *Basis) Interpolate(vals []float64, x float64) (u float64) {
	if len(vals) != lb.Np {
		panic(fmt.Errorf("interpolation values length %d does not match node count %d", len(vals), lb.Np))
	}
	for i, v := range vals {
		u += v * lb.EvalElement(i, x)
	}
	return
}

// DiffMatrix returns the nodal differentiation matrix D with
// D[p,i] = l_i'(R[p]). Applying D to nodal values of a polynomial of degree
// at most N yields the exact nodal values of its derivative.
func (lb *Basis) DiffMatrix() (D utils.Matrix) {
	var (
		r = lb.R.DataP
	)
	D = utils.NewMatrix(lb.Np, lb.Np)
	for p := 0; p < lb.Np; p++ {
		for i := 0; i < lb.Np; i++ {
			D.DataP[p*lb.Np+i] = lb.EvalElementDeriv(i, r[p])
		}
	}
	return
}
