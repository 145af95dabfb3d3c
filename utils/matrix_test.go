package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

var _ mat.Matrix = Matrix{}

func TestMatrix(t *testing.T) {
	// Transpose
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		mNr, mNc := M.Dims()
		A := M.Transpose()
		aNr, aNc := A.Dims()
		assert.Equal(t, aNc, mNr)
		assert.Equal(t, aNr, mNc)
		assert.Equal(t, A.DataP, []float64{1, 4, 2, 5, 3, 6})
	}
	// Copy leaves the source untouched
	{
		M := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		A := M.Copy().Scale(2)
		assert.Equal(t, []float64{1, 2, 3, 4}, M.DataP)
		assert.Equal(t, []float64{2, 4, 6, 8}, A.DataP)
	}
	// Add / Subtract / ElMul element arithmetic
	{
		M := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		A := NewMatrix(2, 2, []float64{10, 20, 30, 40})
		M.Add(A)
		assert.Equal(t, []float64{11, 22, 33, 44}, M.DataP)
		M.Subtract(A)
		assert.Equal(t, []float64{1, 2, 3, 4}, M.DataP)
		M.ElMul(A)
		assert.Equal(t, []float64{10, 40, 90, 160}, M.DataP)
	}
	// POW and Apply
	{
		M := NewMatrix(1, 3, []float64{1, 2, 3})
		M.POW(2)
		assert.Equal(t, []float64{1, 4, 9}, M.DataP)
		M.Apply(math.Sqrt)
		assert.InDeltaSlice(t, []float64{1, 2, 3}, M.DataP, 1.e-15)
	}
	// AddScalar, Min, Max
	{
		M := NewMatrix(2, 2, []float64{-1, 2, 5, 0}).AddScalar(1)
		assert.Equal(t, 0., M.Min())
		assert.Equal(t, 6., M.Max())
	}
	// Col and Row views
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		assert.Equal(t, []float64{2, 5}, M.Col(1).DataP)
		assert.Equal(t, []float64{4, 5, 6}, M.Row(1).DataP)
		assert.Equal(t, []float64{3, 6}, M.Col(-1).DataP)
	}
	// SetRow, -1 addresses the last row
	{
		M := NewMatrix(2, 3)
		M.SetRow(0, []float64{1, 2, 3}).SetRow(-1, []float64{4, 5, 6})
		assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, M.DataP)
	}
	// T views the transpose, so a Matrix feeds gonum APIs directly
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		Mt := M.T()
		nr, nc := Mt.Dims()
		assert.Equal(t, 3, nr)
		assert.Equal(t, 2, nc)
		assert.Equal(t, M.At(0, 2), Mt.At(2, 0))
		var G mat.Dense
		G.Mul(Mt, M)
		assert.Equal(t, 17., G.At(0, 0))
		assert.Equal(t, 45., G.At(2, 2))
	}
	// Mul
	{
		A := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		B := NewMatrix(2, 2, []float64{0, 1, 1, 0})
		assert.Equal(t, []float64{2, 1, 4, 3}, A.Mul(B).DataP)
	}
	// Read only protection
	{
		M := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		M.SetReadOnly("M")
		assert.Panics(t, func() { M.Set(0, 0, 42) })
		M.SetWritable()
		assert.NotPanics(t, func() { M.Set(0, 0, 42) })
	}
}

func TestMatrixInverse(t *testing.T) {
	var (
		tol = 1.e-12
	)
	// A * Ainv = I
	{
		A := NewMatrix(3, 3, []float64{
			2, 0, 1,
			1, 3, 2,
			1, 1, 2,
		})
		AInv, err := A.Inverse()
		assert.NoError(t, err)
		I := A.Mul(AInv)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				expect := 0.
				if i == j {
					expect = 1.
				}
				assert.InDeltaf(t, expect, I.At(i, j), tol, "entry %d,%d", i, j)
			}
		}
	}
	// Singular matrices are rejected
	{
		A := NewMatrix(2, 2, []float64{
			1, 2,
			2, 4,
		})
		_, err := A.Inverse()
		assert.Error(t, err)
	}
}
