package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var fluidsCmd = &cobra.Command{
	Use:   "fluids",
	Short: "List fluids in the property database",
	RunE:  runFluids,
}

func init() {
	rootCmd.AddCommand(fluidsCmd)
}

func runFluids(cmd *cobra.Command, _ []string) error {
	if propertyService == nil {
		return errors.New("property service not configured")
	}

	fluids, err := propertyService.ListFluids(context.Background())
	if err != nil {
		return fmt.Errorf("listing fluids: %w", err)
	}

	if len(fluids) == 0 {
		cmd.Println("No fluids available.")
		return nil
	}

	cmd.Println("Available fluids:")
	for _, name := range fluids {
		cmd.Printf("  %s\n", name)
	}
	return nil
}
