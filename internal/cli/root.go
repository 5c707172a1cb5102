// Package cli provides the Cobra command structure for tabalign.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/tpterovtt/tabalign/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root tabalign command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "tabalign",
		Short: "Tabular alignment for code and markdown tables",
		Long: `tabalign aligns columns of repeated syntax — assignment statements,
markdown tables — the way a source formatter's alignment pass does: by
grouping contiguous rows, scanning each one into named cells, and padding
those cells into common columns. Rows that don't fit the pattern are left
byte-for-byte unchanged.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config location: .tabalign.yml is searched for from this path's directory upward")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newAlignCommand(&configPath, &color))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
