/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/ToBlick/gobasis/InputParameters"
	"github.com/ToBlick/gobasis/basis"
	"github.com/ToBlick/gobasis/grid"
	"github.com/ToBlick/gobasis/jacobi"
	"github.com/ToBlick/gobasis/lagrange"
)

func processCaseInput(caseFile string) (cp *InputParameters.CaseParameters) {
	var (
		err error
	)
	if len(caseFile) == 0 {
		err := fmt.Errorf("must supply a case file (-I, --inputCaseFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Lobatto 8"
BasisType: lagrange       # or jacobi
Left: -1.
Right: 1.
NodeFamily: Lobatto       # Equispaced, Chebyshev or Lobatto
NodeCount: 8              # or give Nodes: [-1., -0.5, 0.3, 1.]
Samples: 101
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = ioutil.ReadFile(caseFile); err != nil {
		panic(err)
	}
	cp = &InputParameters.CaseParameters{}
	if err = cp.Parse(data); err != nil {
		panic(err)
	}
	fillCaseDefaults(cp)
	return
}

func fillCaseDefaults(cp *InputParameters.CaseParameters) {
	cp.BasisType = strings.ToLower(cp.BasisType)
	if cp.BasisType == "" {
		cp.BasisType = "lagrange"
	}
	if cp.Left == 0 && cp.Right == 0 {
		cp.Left, cp.Right = -1, 1
	}
	if cp.Samples <= 0 {
		cp.Samples = 101
	}
	if cp.NodeFamily == "" {
		cp.NodeFamily = string(grid.Lobatto)
	}
}

// caseGrid returns the node set a lagrange case describes, either the
// explicit node list or the named family.
func caseGrid(cp *InputParameters.CaseParameters) (g grid.Grid, err error) {
	iv := grid.Interval{Left: cp.Left, Right: cp.Right}
	if len(cp.Nodes) != 0 {
		return grid.New(cp.Nodes, iv)
	}
	if cp.NodeCount < 1 {
		err = fmt.Errorf("case file needs NodeCount or an explicit Nodes list")
		return
	}
	return grid.FromFamily(grid.NodeType(cp.NodeFamily), cp.NodeCount, iv)
}

func buildBasis(cp *InputParameters.CaseParameters) basis.Basis {
	switch cp.BasisType {
	case "jacobi":
		jb, err := jacobi.New(cp.Alpha, cp.Beta, cp.NodeCount)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		return jb
	case "lagrange":
		g, err := caseGrid(cp)
		if err == nil {
			var lb *lagrange.Basis
			if lb, err = lagrange.New(g); err == nil {
				return lb
			}
		}
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	default:
		fmt.Printf("error: unknown basis type %q, want lagrange or jacobi\n", cp.BasisType)
		os.Exit(1)
	}
	return nil
}
