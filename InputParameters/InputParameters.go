package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML case file.
//
// ghodss/yaml converts the document to JSON before unmarshalling, so the
// field tags are json tags. Single letter keys are off limits: a bare N in
// YAML resolves as the 1.1 boolean "no" and never reaches the struct.
type CaseParameters struct {
	Title      string    `json:"Title"`
	BasisType  string    `json:"BasisType"`  // "lagrange" (default) or "jacobi"
	Left       float64   `json:"Left"`       // Reference interval bounds
	Right      float64   `json:"Right"`
	Nodes      []float64 `json:"Nodes"`      // Explicit node locations
	NodeFamily string    `json:"NodeFamily"` // Used when Nodes is absent: Equispaced, Chebyshev, Lobatto
	NodeCount  int       `json:"NodeCount"`  // Node count for a family, polynomial count for jacobi
	Alpha      float64   `json:"Alpha"`      // Jacobi weight exponents
	Beta       float64   `json:"Beta"`
	Samples    int       `json:"Samples"`    // Sample point count for tables, plots and diagnostics
}

func (cp *CaseParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, cp)
}

func (cp *CaseParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", cp.Title)
	fmt.Printf("[%s]\t\t= Basis Type\n", cp.BasisType)
	fmt.Printf("[%8.5f, %8.5f]\t= Interval\n", cp.Left, cp.Right)
	if len(cp.Nodes) != 0 {
		fmt.Printf("%v\t= Nodes\n", cp.Nodes)
	} else {
		fmt.Printf("[%s], n = %d\t= Node Family\n", cp.NodeFamily, cp.NodeCount)
	}
	if cp.BasisType == "jacobi" {
		fmt.Printf("%8.5f, %8.5f\t= Alpha, Beta\n", cp.Alpha, cp.Beta)
	}
	fmt.Printf("[%d]\t\t\t= Samples\n", cp.Samples)
}
