package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/msomdec/atelier/internal/domain"
	"github.com/msomdec/atelier/internal/service"
)

var (
	planInitialTemp int
	planDefaultTemp int
)

var planCmd = &cobra.Command{
	Use:   "plan <garments.json>",
	Short: "Sort garments into bins and plan one load per bin",
	Long: `Read a JSON array of garments (the same shape the API accepts), sort them
into laundry bins and print the machine program for each non-empty bin.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)

	defaults := service.DefaultPlanConfig()
	planCmd.Flags().IntVar(&planInitialTemp, "initial-temp", defaults.InitialTemperatureC, "Starting temperature ceiling in °C")
	planCmd.Flags().IntVar(&planDefaultTemp, "default-temp", defaults.DefaultTemperatureC, "Temperature assumed for labels without one, in °C")
}

func runPlan(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read garments: %w", err)
	}

	var inputs []service.GarmentInput
	if err := json.Unmarshal(data, &inputs); err != nil {
		return fmt.Errorf("parse garments %s: %w", args[0], err)
	}

	garments := make([]domain.Garment, 0, len(inputs))
	for i, in := range inputs {
		g, err := service.BuildGarment(in)
		if err != nil {
			return fmt.Errorf("garment %d (%s): %w", i+1, in.Name, err)
		}
		g.ID = int64(i + 1)
		garments = append(garments, g)
	}

	cfg := service.PlanConfig{InitialTemperatureC: planInitialTemp, DefaultTemperatureC: planDefaultTemp}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "BIN\tGARMENTS\tTEMP\tPROGRAM\tWARNINGS")

	for _, group := range service.GroupByBin(garments) {
		plan, ok := service.PlanWash(group.Garments, cfg)
		if !ok {
			continue
		}
		names := make([]string, len(group.Garments))
		for i := range group.Garments {
			names[i] = group.Garments[i].Name
		}
		fmt.Fprintf(tw, "%s\t%s\t%d°C\t%s\t%s\n",
			group.Bin.Label(), strings.Join(names, ", "), plan.TargetTemperatureC,
			plan.SuggestedProgram, strings.Join(plan.Warnings, "; "))
	}
	return tw.Flush()
}
