package basis

import (
	"math"
	"sync"

	"github.com/ToBlick/gobasis/utils"
)

// Tabulate evaluates every basis element at every sample point, returning
// the matrix with rows indexed by point and columns by element.
func Tabulate(b Basis, xs []float64) (V utils.Matrix) {
	var (
		np = b.Len()
	)
	if len(xs) == 0 {
		return
	}
	V = utils.NewMatrix(len(xs), np)
	for p, x := range xs {
		for i := 0; i < np; i++ {
			V.DataP[p*np+i] = b.EvalElement(i, x)
		}
	}
	return
}

// TabulateParallel splits the sample points over nP goroutines. Point
// evaluations are independent and each worker owns a contiguous block of
// rows, so the only synchronization is the final wait.
func TabulateParallel(b Basis, xs []float64, nP int) (V utils.Matrix) {
	var (
		np = b.Len()
	)
	if len(xs) == 0 {
		return
	}
	if nP < 1 {
		nP = 1
	}
	if nP > len(xs) {
		nP = len(xs)
	}
	V = utils.NewMatrix(len(xs), np)
	pm := utils.NewPartitionMap(nP, len(xs))
	var wg sync.WaitGroup
	for n := 0; n < nP; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			pMin, pMax := pm.GetBucketRange(n)
			for p := pMin; p < pMax; p++ {
				for i := 0; i < np; i++ {
					V.DataP[p*np+i] = b.EvalElement(i, xs[p])
				}
			}
		}(n)
	}
	wg.Wait()
	return
}

// LebesgueFunction sums the absolute element values at x.
func LebesgueFunction(b Basis, x float64) (lam float64) {
	for i := 0; i < b.Len(); i++ {
		lam += math.Abs(b.EvalElement(i, x))
	}
	return
}

// LebesgueConstant samples the Lebesgue function uniformly over the support
// and returns the maximum, the standard conditioning diagnostic for nodal
// interpolation.
func LebesgueConstant(b Basis, nSamples int) (lamMax float64) {
	for _, x := range b.Support().Sample(nSamples) {
		if lam := LebesgueFunction(b, x); lam > lamMax {
			lamMax = lam
		}
	}
	return
}
