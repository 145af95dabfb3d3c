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
	"io"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/ToBlick/gobasis/basis"
)

// TabulateCmd represents the tabulate command
var TabulateCmd = &cobra.Command{
	Use:   "tabulate",
	Short: "Evaluate every basis element over a sample of the interval",
	Long: `
Builds the basis a YAML case file describes, evaluates every element, or its
derivative or antiderivative, over a uniform sample of the reference interval
and writes the table as CSV,

gobasis tabulate -I case.yaml -o table.csv`,
	Run: func(cmd *cobra.Command, args []string) {
		caseFile, _ := cmd.Flags().GetString("inputCaseFile")
		outFile, _ := cmd.Flags().GetString("outputFile")
		withDeriv, _ := cmd.Flags().GetBool("deriv")
		withAnti, _ := cmd.Flags().GetBool("anti")
		nPar, _ := cmd.Flags().GetInt("parallel")
		prof, _ := cmd.Flags().GetBool("profile")
		if prof {
			defer profile.Start(profile.CPUProfile).Stop()
		}
		if withDeriv && withAnti {
			fmt.Printf("error: choose one of --deriv and --anti\n")
			os.Exit(1)
		}
		cp := processCaseInput(caseFile)
		cp.Print()
		b := buildBasis(cp)

		w := io.Writer(os.Stdout)
		if len(outFile) != 0 {
			f, err := os.Create(outFile)
			if err != nil {
				panic(err)
			}
			defer f.Close()
			w = f
		}
		switch {
		case withDeriv:
			writeFuncTable(w, b, cp.Samples, "d_e", elementDeriv(b))
		case withAnti:
			writeFuncTable(w, b, cp.Samples, "int_e", elementAntideriv(b))
		default:
			writeValueTable(w, b, cp.Samples, nPar)
		}
	},
}

func init() {
	rootCmd.AddCommand(TabulateCmd)
	TabulateCmd.Flags().StringP("inputCaseFile", "I", "", "YAML case file describing the basis")
	TabulateCmd.Flags().StringP("outputFile", "o", "", "CSV output file, stdout when omitted")
	TabulateCmd.Flags().Bool("deriv", false, "tabulate element derivatives instead of values")
	TabulateCmd.Flags().Bool("anti", false, "tabulate element antiderivatives instead of values")
	TabulateCmd.Flags().IntP("parallel", "p", runtime.NumCPU(), "worker count for the value table")
	TabulateCmd.Flags().Bool("profile", false, "write a CPU profile for the run")
}

func elementDeriv(b basis.Basis) func(i int, x float64) float64 {
	d, ok := b.(basis.Differentiable)
	if !ok {
		fmt.Printf("error: %s\n", basis.ErrNoDeriv.Error())
		os.Exit(1)
	}
	return d.EvalElementDeriv
}

func elementAntideriv(b basis.Basis) func(i int, x float64) float64 {
	in, ok := b.(basis.Integrable)
	if !ok {
		fmt.Printf("error: %s\n", basis.ErrNoAntideriv.Error())
		os.Exit(1)
	}
	return in.EvalElementAntideriv
}

func writeHeader(w io.Writer, prefix string, np int) {
	fmt.Fprintf(w, "x")
	for i := 0; i < np; i++ {
		fmt.Fprintf(w, ",%s%d", prefix, i)
	}
	fmt.Fprintf(w, "\n")
}

func writeValueTable(w io.Writer, b basis.Basis, nSamples, nPar int) {
	var (
		xs = b.Support().Sample(nSamples)
		np = b.Len()
		V  = basis.TabulateParallel(b, xs, nPar)
	)
	writeHeader(w, "e", np)
	for p, x := range xs {
		fmt.Fprintf(w, "%.15g", x)
		for i := 0; i < np; i++ {
			fmt.Fprintf(w, ",%.15g", V.At(p, i))
		}
		fmt.Fprintf(w, "\n")
	}
}

func writeFuncTable(w io.Writer, b basis.Basis, nSamples int, prefix string, eval func(i int, x float64) float64) {
	var (
		xs = b.Support().Sample(nSamples)
		np = b.Len()
	)
	writeHeader(w, prefix, np)
	for _, x := range xs {
		fmt.Fprintf(w, "%.15g", x)
		for i := 0; i < np; i++ {
			fmt.Fprintf(w, ",%.15g", eval(i, x))
		}
		fmt.Fprintf(w, "\n")
	}
}
