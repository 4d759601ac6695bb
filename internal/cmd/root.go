package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "atelier",
	Short: "Laundry care classification and wash planning",
	Long: `atelier keeps a closet of garments, sorts them into laundry bins from their
care labels, colors and fabrics, and plans one machine program per load.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("ATELIER_CONFIG"),
		"Path to a YAML config file (env ATELIER_CONFIG)")
}
