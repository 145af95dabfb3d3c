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

	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"

	"github.com/ToBlick/gobasis/InputParameters"
	"github.com/ToBlick/gobasis/basis"
)

// LebesgueCmd represents the lebesgue command
var LebesgueCmd = &cobra.Command{
	Use:   "lebesgue",
	Short: "Report the Lebesgue constant of a nodal basis",
	Long: `
Builds the basis a YAML case file describes and reports its Lebesgue constant,
the worst case amplification an interpolant applies to nodal data. For nodal
bases the node spacing statistics are reported alongside,

gobasis lebesgue -I case.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		caseFile, _ := cmd.Flags().GetString("inputCaseFile")
		cp := processCaseInput(caseFile)
		cp.Print()
		b := buildBasis(cp)
		lam := basis.LebesgueConstant(b, cp.Samples)
		fmt.Printf("Lebesgue Constant               = [%8.5f]\n", lam)
		if cp.BasisType == "lagrange" {
			printSpacingStats(cp)
		}
	},
}

func init() {
	rootCmd.AddCommand(LebesgueCmd)
	LebesgueCmd.Flags().StringP("inputCaseFile", "I", "", "YAML case file describing the basis")
}

func printSpacingStats(cp *InputParameters.CaseParameters) {
	g, err := caseGrid(cp)
	if err != nil {
		return
	}
	gaps := g.Spacings()
	if gaps == nil {
		return
	}
	var (
		min, _  = stats.Min(gaps)
		max, _  = stats.Max(gaps)
		mean, _ = stats.Mean(gaps)
		dev, _  = stats.StandardDeviation(gaps)
	)
	fmt.Printf("Node Spacing Min / Max          = [%8.5f, %8.5f]\n", min, max)
	fmt.Printf("Node Spacing Mean / StdDev      = [%8.5f, %8.5f]\n", mean, dev)
}
