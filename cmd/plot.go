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
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/ToBlick/gobasis/basis"
)

// PlotCmd represents the plot command
var PlotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render every basis element as a line plot",
	Long: `
Builds the basis a YAML case file describes, samples every element over the
reference interval and renders the curves into a single image,

gobasis plot -I case.yaml -o basis.png`,
	Run: func(cmd *cobra.Command, args []string) {
		caseFile, _ := cmd.Flags().GetString("inputCaseFile")
		outFile, _ := cmd.Flags().GetString("outputFile")
		cp := processCaseInput(caseFile)
		cp.Print()
		b := buildBasis(cp)
		if err := plotBasis(b, cp.Title, outFile, cp.Samples); err != nil {
			fmt.Printf("error plotting basis: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", outFile)
	},
}

func init() {
	rootCmd.AddCommand(PlotCmd)
	PlotCmd.Flags().StringP("inputCaseFile", "I", "", "YAML case file describing the basis")
	PlotCmd.Flags().StringP("outputFile", "o", "basis.png", "image file, type from the extension")
}

func plotBasis(b basis.Basis, title, outFile string, nSamples int) (err error) {
	var (
		xs = b.Support().Sample(nSamples)
		np = b.Len()
		V  = basis.Tabulate(b, xs)
	)
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "element value"
	for i := 0; i < np; i++ {
		pts := make(plotter.XYs, len(xs))
		for px, x := range xs {
			pts[px].X = x
			pts[px].Y = V.At(px, i)
		}
		var line *plotter.Line
		if line, err = plotter.NewLine(pts); err != nil {
			return
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("e%d", i), line)
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, outFile)
}
