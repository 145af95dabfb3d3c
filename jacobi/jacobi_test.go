package jacobi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegendreClosedForms(t *testing.T) {
	var (
		tol = 1.e-12
	)
	jb, err := New(0, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, jb.Len())
	assert.Equal(t, -1., jb.Support().Left)
	assert.Equal(t, 1., jb.Support().Right)

	// Orthonormal Legendre polynomials carry a sqrt((2k+1)/2) scaling
	exact := []func(x float64) float64{
		func(x float64) float64 { return math.Sqrt(1. / 2.) },
		func(x float64) float64 { return math.Sqrt(3./2.) * x },
		func(x float64) float64 { return math.Sqrt(5./2.) * (3*x*x - 1) / 2 },
		func(x float64) float64 { return math.Sqrt(7./2.) * (5*x*x*x - 3*x) / 2 },
	}
	for k, f := range exact {
		for _, x := range []float64{-1, -0.63, -0.2, 0, 0.41, 0.88, 1} {
			assert.InDeltaf(t, f(x), jb.EvalElement(k, x), tol, "degree %d at x = %v", k, x)
		}
	}
}

func TestJacobiSymmetry(t *testing.T) {
	var (
		tol = 1.e-12
	)
	// Equal weights give even/odd symmetry per degree
	jb, err := New(0.75, 0.75, 6)
	require.NoError(t, err)
	for k := 0; k < jb.Len(); k++ {
		sign := 1.
		if k%2 == 1 {
			sign = -1.
		}
		for _, x := range []float64{0.15, 0.5, 0.92} {
			assert.InDeltaf(t, sign*jb.EvalElement(k, x), jb.EvalElement(k, -x), tol,
				"degree %d parity at x = %v", k, x)
		}
	}
}

func TestJacobiDerivative(t *testing.T) {
	var (
		h   = 1.e-6
		tol = 1.e-5
	)
	jb, err := New(1.5, 0.5, 7)
	require.NoError(t, err)
	assert.Equal(t, 0., jb.EvalElementDeriv(0, 0.3))
	for k := 1; k < jb.Len(); k++ {
		for _, x := range []float64{-0.85, -0.3, 0.05, 0.6, 0.97} {
			fd := (jb.EvalElement(k, x+h) - jb.EvalElement(k, x-h)) / (2 * h)
			assert.InDeltaf(t, fd, jb.EvalElementDeriv(k, x), tol,
				"derivative of degree %d at x = %v", k, x)
		}
	}
}

func TestChebyshevWeights(t *testing.T) {
	// Weight exponents summing to -1 must stay finite
	jb, err := New(-0.5, -0.5, 5)
	require.NoError(t, err)
	for k := 0; k < jb.Len(); k++ {
		for _, x := range []float64{-0.9, 0, 0.7} {
			v := jb.EvalElement(k, x)
			assert.Falsef(t, math.IsNaN(v) || math.IsInf(v, 0), "degree %d at x = %v gave %v", k, x, v)
		}
	}
}

func TestJacobiConstructionErrors(t *testing.T) {
	_, err := New(0, 0, 0)
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = New(-1, 0, 3)
	assert.ErrorIs(t, err, ErrBadWeight)
	_, err = New(0, -1.2, 3)
	assert.ErrorIs(t, err, ErrBadWeight)
}
