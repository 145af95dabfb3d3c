package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/ToBlick/gobasis/InputParameters"
	"github.com/ToBlick/gobasis/basis"
)

func TestCaseFile(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Test Case
BasisType: lagrange
Left: 0.
Right: 2.
Nodes: [0., 1., 2.]
Samples: 11
`)
	var cp InputParameters.CaseParameters
	if err = cp.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, cp.Title, "Test Case")
	assert.Equal(t, cp.Right, 2.)
	assert.Equal(t, len(cp.Nodes), 3)
	cp.Print()

	fillCaseDefaults(&cp)
	assert.Equal(t, cp.NodeFamily, "Lobatto")

	b := buildBasis(&cp)
	assert.Equal(t, b.Len(), 3)
	// Nodal bases sum to one anywhere on the interval
	var sum float64
	for i := 0; i < b.Len(); i++ {
		sum += b.EvalElement(i, 0.3)
	}
	if sum < 1.-1.e-12 || sum > 1.+1.e-12 {
		t.Errorf("partition of unity broken, sum = %v", sum)
	}
}

func TestCaseDefaults(t *testing.T) {
	var cp InputParameters.CaseParameters
	if err := cp.Parse([]byte("NodeCount: 5\n")); err != nil {
		panic(err)
	}
	assert.Equal(t, cp.NodeCount, 5)
	fillCaseDefaults(&cp)
	assert.Equal(t, cp.BasisType, "lagrange")
	assert.Equal(t, cp.Left, -1.)
	assert.Equal(t, cp.Right, 1.)
	assert.Equal(t, cp.Samples, 101)
	g, err := caseGrid(&cp)
	if err != nil {
		panic(err)
	}
	assert.Equal(t, g.Len(), 5)
	assert.Equal(t, g.Node(0), -1.)
	assert.Equal(t, g.Node(4), 1.)
}

func TestNodeCountKey(t *testing.T) {
	// The count key must stay multi word: ghodss/yaml reads a bare "N" key
	// as the YAML 1.1 boolean "no", so it would never populate the field
	var cp InputParameters.CaseParameters
	if err := cp.Parse([]byte("NodeCount: 7\n")); err != nil {
		panic(err)
	}
	assert.Equal(t, cp.NodeCount, 7)

	var stray InputParameters.CaseParameters
	if err := stray.Parse([]byte("N: 7\n")); err != nil {
		panic(err)
	}
	assert.Equal(t, stray.NodeCount, 0)
}

func TestJacobiCase(t *testing.T) {
	fileInput := []byte(`
Title: Modal Case
BasisType: jacobi
NodeCount: 4
Alpha: 0.5
Beta: 0.5
`)
	var cp InputParameters.CaseParameters
	if err := cp.Parse(fileInput); err != nil {
		panic(err)
	}
	fillCaseDefaults(&cp)
	b := buildBasis(&cp)
	assert.Equal(t, b.Len(), 4)
	_, ok := b.(basis.Integrable)
	assert.Equal(t, ok, false)
}
