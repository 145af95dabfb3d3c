// Package jacobi implements the orthonormal Jacobi polynomial basis
// P_k^(alpha,beta) on [-1,1], the modal counterpart of the nodal Lagrange
// basis. Derivatives come from the raised weight identity; antiderivatives
// are not provided.
package jacobi

import (
	"errors"
	"fmt"
	"math"

	"github.com/ToBlick/gobasis/grid"
)

var (
	ErrEmpty     = errors.New("jacobi: basis needs at least one polynomial")
	ErrBadWeight = errors.New("jacobi: weight exponents must be greater than -1")
)

// Basis holds the first Np orthonormal Jacobi polynomials for fixed weight
// exponents Alpha and Beta.
type Basis struct {
	Np          int
	Alpha, Beta float64
}

func New(alpha, beta float64, n int) (jb *Basis, err error) {
	if n < 1 {
		err = ErrEmpty
		return
	}
	if alpha <= -1 || beta <= -1 {
		err = fmt.Errorf("%w: alpha = %v, beta = %v", ErrBadWeight, alpha, beta)
		return
	}
	jb = &Basis{Np: n, Alpha: alpha, Beta: beta}
	return
}

// Len returns the number of basis functions.
func (jb *Basis) Len() int { return jb.Np }

// Support returns the fixed reference interval [-1,1].
func (jb *Basis) Support() grid.Interval { return grid.Interval{Left: -1, Right: 1} }

// EvalElement evaluates the orthonormal Jacobi polynomial of degree k at x
// through the standard three term recurrence. The element index is not
// validated, callers guarantee 0 <= k < Np.
func (jb *Basis) EvalElement(k int, x float64) float64 {
	return jacobiP(jb.Alpha, jb.Beta, k, x)
}

// EvalElementDeriv evaluates the first derivative of the degree k basis
// polynomial at x, using
// d/dx P_k^(a,b) = sqrt(k(k+a+b+1)) P_(k-1)^(a+1,b+1).
// The element index is not validated.
func (jb *Basis) EvalElementDeriv(k int, x float64) float64 {
	if k == 0 {
		return 0
	}
	fk := float64(k)
	return math.Sqrt(fk*(fk+jb.Alpha+jb.Beta+1)) * jacobiP(jb.Alpha+1, jb.Beta+1, k-1, x)
}

func jacobiP(alpha, beta float64, k int, x float64) float64 {
	var (
		ab = alpha + beta
	)
	pm2 := 1. / math.Sqrt(gamma0(alpha, beta))
	if k == 0 {
		return pm2
	}
	pm1 := ((ab+2.)*x/2. + (alpha-beta)/2.) / math.Sqrt(gamma1(alpha, beta))
	if k == 1 {
		return pm1
	}
	var (
		a1   = alpha + 1.
		b1   = beta + 1.
		ab1  = ab + 1.
		aold = 2. / (ab + 2.) * math.Sqrt(a1*b1/(ab+3.))
	)
	for i := 0; i < k-1; i++ {
		ip1 := float64(i + 1)
		ip2 := ip1 + 1.
		h1 := 2.*ip1 + ab
		anew := 2. / (h1 + 2.) * math.Sqrt(ip2*(ip1+ab1)*(ip1+a1)*(ip1+b1)/((h1+1.)*(h1+3.)))
		bnew := -(alpha*alpha - beta*beta) / (h1 * (h1 + 2.))
		p := (-aold*pm2 + (x-bnew)*pm1) / anew
		pm2, pm1 = pm1, p
		aold = anew
	}
	return pm1
}

// gamma0 is the squared norm of the degree zero Jacobi polynomial under the
// (alpha,beta) weight. ab1*Gamma(ab1) is folded into Gamma(ab1+1) so weight
// pairs summing to -1 stay finite.
func gamma0(alpha, beta float64) float64 {
	ab1 := alpha + beta + 1.
	a1 := alpha + 1.
	b1 := beta + 1.
	return math.Gamma(a1) * math.Gamma(b1) * math.Pow(2, ab1) / math.Gamma(ab1+1.)
}

func gamma1(alpha, beta float64) float64 {
	ab := alpha + beta
	a1 := alpha + 1.
	b1 := beta + 1.
	return a1 * b1 * gamma0(alpha, beta) / (ab + 3.)
}
