package poly

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolynomial(t *testing.T) {
	var (
		tol = 1.e-14
	)
	// Horner evaluation: p(x) = 2 - 3x + x^3
	{
		p := New(2, -3, 0, 1)
		assert.Equal(t, 3, p.Degree())
		assert.InDeltaf(t, 2., p.Eval(0), tol, "p(0)")
		assert.InDeltaf(t, 0., p.Eval(1), tol, "p(1)")
		assert.InDeltaf(t, 4., p.Eval(-1), tol, "p(-1)")
		assert.InDeltaf(t, 4., p.Eval(2), tol, "p(2)")
	}
	// Trailing zeros are trimmed, zero polynomial has degree -1
	{
		p := New(1, 2, 0, 0)
		assert.Equal(t, 1, p.Degree())
		z := New(0, 0)
		assert.Equal(t, -1, z.Degree())
		assert.Equal(t, 0., z.Eval(3))
		assert.Equal(t, "0", z.String())
	}
	// Derivative: d/dx (2 - 3x + x^3) = -3 + 3x^2
	{
		d := New(2, -3, 0, 1).Derivative()
		assert.Equal(t, []float64{-3, 0, 3}, d.Coeffs)
		assert.Equal(t, Polynomial{}, New(5).Derivative())
	}
	// Integration uses the power rule with zero constant term
	{
		q := New(2, -3, 0, 1).Integrate()
		assert.Equal(t, []float64{0, 2, -1.5, 0, 0.25}, q.Coeffs)
		assert.Equal(t, 0., q.Eval(0))
	}
	// Derivative of the antiderivative returns the original
	{
		p := New(1, 2, 3)
		back := p.Integrate().Derivative()
		assert.InDeltaSlice(t, p.Coeffs, back.Coeffs, tol)
	}
	// Scale and Add
	{
		p := New(1, 1).Scale(2).Add(New(0, -2, 4))
		assert.Equal(t, []float64{2, 0, 4}, p.Coeffs)
	}
}
