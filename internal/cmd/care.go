package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msomdec/atelier/internal/domain"
	"github.com/msomdec/atelier/internal/service"
)

var classifyColorCmd = &cobra.Command{
	Use:   "classify-color <hex>...",
	Short: "Sort hex colors into whites, darks or lights",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, hex := range args {
			normalized, ok := domain.NormalizeHex(hex)
			group := domain.ClassifyColor(hex)
			if !ok {
				fmt.Fprintf(out, "%s\t%s\t(malformed, treated as gray)\n", hex, group.Label())
				continue
			}
			fmt.Fprintf(out, "#%s\t%s\n", normalized, group.Label())
		}
	},
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize <label>...",
	Short: "Map symbol recognizer labels onto care symbols",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		symbols, unmapped := service.NormalizeCareLabels(args)
		for _, s := range symbols {
			fmt.Fprintf(out, "%s\t%s\n", s, s.Label())
		}
		if len(unmapped) > 0 {
			fmt.Fprintf(out, "unmapped: %s\n", strings.Join(unmapped, ", "))
		}
	},
}

func init() {
	rootCmd.AddCommand(classifyColorCmd)
	rootCmd.AddCommand(normalizeCmd)
}
