package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dhlim/plancycle/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newGenerateCmd(app *App) *cobra.Command {
	var save, asJSON bool

	cmd := &cobra.Command{
		Use:   "generate <plan-file.json>",
		Short: "Generate a timetable from a plan file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			result, err := app.Schedule.GenerateFromFile(ctx, args[0], save)
			if err != nil {
				return err
			}

			if asJSON {
				out, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding result: %w", err)
				}
				fmt.Println(string(out))
				return nil
			}

			fmt.Print(formatter.RenderTimetable(result.Group.Name, result.Plans))
			if warnings := formatter.RenderFailures(result.Failures); warnings != "" {
				fmt.Print("\n" + warnings)
			}
			if result.Saved {
				fmt.Printf("\nSaved as group %s\n", result.Group.ID)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Persist the generated plans")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw result as JSON")

	return cmd
}
