package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

var _ mat.Matrix = Vector{}

func TestVector(t *testing.T) {
	N := 3
	v1 := NewVector(N).Set(1)
	require.Equal(t, 1., v1.DataP[N-1])
	v1.Set(2)
	require.Equal(t, 2., v1.DataP[N-1])

	// Outer product via ToMatrix / Transpose
	v1 = NewVector(N, []float64{1, 2, 3})
	v2 := NewVector(2, []float64{2, 3})
	A := v1.ToMatrix().Mul(v2.Transpose())
	nr, nc := A.Dims()
	require.Equal(t, N, nr)
	require.Equal(t, 2, nc)
	require.Equal(t, []float64{2, 3, 4, 6, 6, 9}, A.DataP)

	// Chainable arithmetic
	v3 := NewVector(3, []float64{1, 2, 3}).Scale(2).Add(1)
	assert.Equal(t, []float64{3, 5, 7}, v3.DataP)
	v3.POW(2)
	assert.Equal(t, []float64{9, 25, 49}, v3.DataP)

	// Copy does not alias
	v4 := v3.Copy().Set(0)
	assert.Equal(t, []float64{9, 25, 49}, v3.DataP)
	assert.Equal(t, []float64{0, 0, 0}, v4.DataP)

	assert.Equal(t, 9., v3.Min())
	assert.Equal(t, 49., v3.Max())

	// Apply maps elementwise
	v3.Apply(math.Sqrt)
	assert.InDeltaSlice(t, []float64{3, 5, 7}, v3.DataP, 1.e-15)

	// A vector is a one column mat.Matrix, T views the single row
	rr, rc := v3.Dims()
	assert.Equal(t, 3, rr)
	assert.Equal(t, 1, rc)
	vt := v3.T()
	rr, rc = vt.Dims()
	assert.Equal(t, 1, rr)
	assert.Equal(t, 3, rc)
	assert.Equal(t, v3.AtVec(1), vt.At(0, 1))
	assert.Equal(t, v3.DataP, v3.RawVector().Data)
}
