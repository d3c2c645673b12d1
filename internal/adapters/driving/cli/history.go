package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage saved analyses",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved analyses, newest first",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one saved analysis",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all saved analyses",
	RunE:  runHistoryClear,
}

func init() {
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of entries")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	records, err := historyService.List(context.Background(), historyLimit)
	if err != nil {
		return fmt.Errorf("listing history: %w", err)
	}

	if len(records) == 0 {
		cmd.Println("No saved analyses.")
		return nil
	}

	for _, rec := range records {
		cmd.Printf("%s  %s  %s  Re=%.3e  f=%.5f  dP=%.1f Pa\n",
			rec.CreatedAt.Format("2006-01-02 15:04"),
			rec.ID,
			rec.Fluid,
			rec.Result.Reynolds,
			rec.Result.Friction.Value,
			rec.Result.PressureDrop,
		)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	rec, err := historyService.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("loading analysis: %w", err)
	}

	cmd.Printf("Analysis %s (%s)\n", rec.ID, rec.CreatedAt.Format("2006-01-02 15:04:05"))
	cmd.Printf("Fluid: %s, P=%g Pa, T=%g K\n", rec.Fluid, rec.Pressure, rec.Temperature)
	cmd.Printf("Pipe: D=%g m, L=%g m, eps=%g m, K=%g\n",
		rec.Input.Pipe.Diameter, rec.Input.Pipe.Length, rec.Input.Pipe.Roughness, rec.Input.MinorLossCoefficient)
	outputResultText(cmd, rec.Fluid, rec.Pressure, rec.Temperature, rec.Result)
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	if err := historyService.Clear(context.Background()); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	cmd.Println("History cleared.")
	return nil
}
