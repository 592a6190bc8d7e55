package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	ioinput "github.com/lipidtools/ordercfg/internal/io/input"
	"github.com/lipidtools/ordercfg/pkg/input"
	"github.com/spf13/cobra"
)

func getInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print a summary of an analysis input file",
		Long: `Load and validate an analysis input file, then print a
human-readable summary of what the analysis will do: the kind of
order parameters, the analyzed time window, leaflet classification,
region restriction and outputs.

Examples:
  ordercfg inspect analysis.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: runInspect,
	}
	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	a, err := ioinput.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Analysis input: %s\n\n", args[0])
	fmt.Printf("  Order parameters:  %s\n", describeOrderType(a.Type))
	fmt.Printf("  Membrane normal:   %s\n", a.MembraneNormal)
	fmt.Printf("  Structure:         %s\n", a.Structure)
	fmt.Printf("  Trajectory:        %s\n", strings.Join(a.Trajectory, ", "))
	fmt.Printf("  Index:             %s\n", a.Index)
	if a.Bonds != "" {
		fmt.Printf("  Bonds:             %s\n", a.Bonds)
	}
	fmt.Printf("  Time window:       %s\n", describeWindow(a))
	fmt.Printf("  Outputs:           %s\n", strings.Join(outputs(a), ", "))

	if a.Leaflets != nil {
		fmt.Printf("  Leaflets:          %s (%s)\n",
			a.Leaflets.Kind, leafletFrequency(a.Leaflets))
	}
	if a.Geometry != nil {
		fmt.Printf("  Region:            %s\n", a.Geometry)
	}
	if a.EstimateError != nil {
		fmt.Printf("  Error estimation:  block averaging, %d blocks\n",
			a.EstimateError.NBlocks)
	}
	if a.Map != nil {
		fmt.Printf("  Ordermaps:         %s (%g x %g nm bins)\n",
			a.Map.OutputDirectory, a.Map.BinSize[0], a.Map.BinSize[1])
	}

	fmt.Printf("  Threads:           %d\n", a.NThreads)
	return nil
}

func describeOrderType(t *input.OrderType) string {
	switch t.Kind {
	case input.KindAAOrder:
		return "atomistic"
	case input.KindCGOrder:
		return "coarse-grained"
	case input.KindUAOrder:
		return "united-atom"
	}
	return t.Kind
}

func describeWindow(a *input.Analysis) string {
	var window string
	if math.IsInf(a.End, 1) {
		window = fmt.Sprintf("from %s ps to the end of the trajectory",
			humanize.Commaf(a.Begin))
	} else {
		window = fmt.Sprintf("%s - %s ps",
			humanize.Commaf(a.Begin), humanize.Commaf(a.End))
	}
	if a.Step > 1 {
		window += fmt.Sprintf(", every %s frame",
			humanize.Ordinal(a.Step))
	}
	return window
}

func outputs(a *input.Analysis) []string {
	res := []string{a.Output}
	for _, out := range []string{a.OutputTab, a.OutputXvg, a.OutputCsv} {
		if out != "" {
			res = append(res, out)
		}
	}
	return res
}

func leafletFrequency(l *input.Leaflets) string {
	switch l.Kind {
	case input.KindGlobalLeaflets:
		return l.Global.Frequency.String()
	case input.KindLocalLeaflets:
		return l.Local.Frequency.String()
	case input.KindIndividualLeaflets:
		return l.Individual.Frequency.String()
	case input.KindClusteringLeaflets:
		return l.Clustering.Frequency.String()
	case input.KindFromFileLeaflets:
		return l.FromFile.Frequency.String()
	case input.KindFromNdxLeaflets:
		return l.FromNdx.Frequency.String()
	}
	return ""
}
