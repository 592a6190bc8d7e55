package main

import (
	"fmt"
	"log/slog"

	ioconfig "github.com/lipidtools/ordercfg/internal/io/config"
	"github.com/lipidtools/ordercfg/pkg/config"
	"github.com/lipidtools/ordercfg/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	quiet   bool
	cfg     *config.Config
)

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ordercfg",
		Short: "ordercfg works with lipid order-parameter analysis input files",
		Long: `ordercfg validates, inspects and generates the YAML input files
consumed by lipid order-parameter analysis. It checks an input file
completely before any analysis starts: the document must be
well-formed, match the schema (including the tagged variants for
analysis type, leaflet classification and geometry), and satisfy all
semantic invariants (ordered frame ranges, positive radii, non-empty
selections).

The tool never opens the structure, trajectory or index files an
input file points to; it only judges the input file itself.

Commands:
  check    - validate one or more input files
  inspect  - print a summary of a parsed input file
  template - generate a documented example input file

Configuration precedence (highest to lowest):
  1. CLI flags (--verbose, --quiet, --jobs)
  2. Environment variables (ORDERCFG_*)
  3. Config file (ordercfg.yaml)
  4. Built-in defaults`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Auto-generate the config file on first run.
			if cfgFile == "" {
				exists, err := ioconfig.ConfigFileExists()
				if err != nil {
					return fmt.Errorf("failed to check config file: %w", err)
				}
				if !exists {
					generatedPath, err := ioconfig.GenerateDefaultConfig()
					if err != nil {
						// Defaults still apply, so only warn.
						fmt.Printf("Warning: could not generate config file: %v\n", err)
					} else {
						fmt.Printf("Generated default config at: %s\n", generatedPath)
					}
				}
			}

			result, err := ioconfig.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			cfg = result

			if verbose {
				cfg.Update([]config.Option{config.OptLogLevel("debug")})
			}
			if quiet {
				cfg.Update([]config.Option{config.OptLogLevel("error")})
			}

			slog.SetDefault(logger.New(&cfg.Log))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./ordercfg.yaml or ~/.config/ordercfg/ordercfg.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log debug information")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"log errors only")

	// Override version flag to use -V
	rootCmd.Flags().BoolP("version", "V", false, "version for ordercfg")

	rootCmd.AddCommand(getCheckCmd())
	rootCmd.AddCommand(getInspectCmd())
	rootCmd.AddCommand(getTemplateCmd())

	return rootCmd
}

// getConfig returns the tool configuration loaded by the root
// command. Subcommands call it instead of touching the package var.
func getConfig() *config.Config {
	if cfg == nil {
		cfg = config.New()
	}
	return cfg
}
