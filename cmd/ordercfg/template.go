package main

import (
	"fmt"

	ioinput "github.com/lipidtools/ordercfg/internal/io/input"
	"github.com/spf13/cobra"
)

var (
	templateOutput string
	templateForce  bool
)

func getTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Generate a documented example input file",
		Long: `Generate a documented example analysis input file.

The generated file validates as-is; replace the paths and atom
selections with the ones of your system. Optional blocks (leaflets,
geometry, error estimation, ordermaps) are included commented out.

Examples:
  ordercfg template
  ordercfg template -o myrun.yaml
  ordercfg template -o myrun.yaml --force`,
		RunE: runTemplate,
	}

	cmd.Flags().StringVarP(&templateOutput, "output", "o", "analysis.yaml",
		"path of the generated file")
	cmd.Flags().BoolVar(&templateForce, "force", false,
		"overwrite an existing file")

	return cmd
}

func runTemplate(cmd *cobra.Command, args []string) error {
	if err := ioinput.GenerateTemplate(templateOutput, templateForce); err != nil {
		return err
	}
	fmt.Printf("✓ Generated input file template at: %s\n", templateOutput)
	return nil
}
