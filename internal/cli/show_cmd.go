package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dhlim/plancycle/internal/cli/formatter"
	"github.com/dhlim/plancycle/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// dateValue is a pflag.Value that only accepts YYYY-MM-DD.
type dateValue string

var _ pflag.Value = (*dateValue)(nil)

func (d *dateValue) String() string { return string(*d) }
func (d *dateValue) Type() string   { return "date" }

func (d *dateValue) Set(s string) error {
	if _, err := time.Parse(domain.DateLayout, s); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD, got %q", s)
	}
	*d = dateValue(s)
	return nil
}

func newShowCmd(app *App) *cobra.Command {
	var date dateValue

	cmd := &cobra.Command{
		Use:   "show [group-id]",
		Short: "List saved plan groups, or show one group's timetable",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if len(args) == 0 {
				groups, err := app.Schedule.ListGroups(ctx)
				if err != nil {
					return err
				}
				fmt.Print(formatter.RenderGroupList(groups))
				return nil
			}

			groupID, err := resolveGroupID(ctx, app, args[0])
			if err != nil {
				return err
			}
			group, plans, err := app.Schedule.GetGroupPlans(ctx, groupID)
			if err != nil {
				return err
			}

			if date != "" {
				var filtered []*domain.ScheduledPlan
				for _, p := range plans {
					if p.PlanDate == string(date) {
						filtered = append(filtered, p)
					}
				}
				plans = filtered
			}

			title := fmt.Sprintf("%s (%s ~ %s)", group.Name, group.PeriodStart, group.PeriodEnd)
			fmt.Print(formatter.RenderTimetable(title, plans))
			return nil
		},
	}

	cmd.Flags().Var(&date, "date", "Only show plans for one date (YYYY-MM-DD)")

	return cmd
}

// resolveGroupID accepts a full group id or an unambiguous prefix.
func resolveGroupID(ctx context.Context, app *App, arg string) (string, error) {
	groups, err := app.Schedule.ListGroups(ctx)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, g := range groups {
		if g.ID == arg {
			return g.ID, nil
		}
		if strings.HasPrefix(g.ID, arg) {
			matches = append(matches, g.ID)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("no plan group matches %q", arg)
	default:
		return "", fmt.Errorf("group id %q is ambiguous (%d matches)", arg, len(matches))
	}
}
