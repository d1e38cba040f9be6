package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/dhlim/plancycle/internal/cli/formatter"
	"github.com/dhlim/plancycle/internal/domain"
	"github.com/dhlim/plancycle/internal/importer"
	"github.com/spf13/cobra"
)

// plancycleHuhTheme styles huh forms with the formatter palette.
func plancycleHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func newWizardCmd(app *App) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Build and run a scheduling request interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("wizard requires an interactive terminal")
			}

			plan, err := runPlanWizard()
			if err != nil {
				return err
			}

			result, err := app.Schedule.GenerateFromPlanFile(context.Background(), plan, save)
			if err != nil {
				return err
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

	return cmd
}

// runPlanWizard collects a full plan file through huh forms.
func runPlanWizard() (*importer.PlanFile, error) {
	plan := &importer.PlanFile{Kind: string(domain.KindTimetable1730)}

	var studyDays, reviewDays, windowStart, windowEnd string
	weakFocus := false

	setup := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Plan name").Value(&plan.Name).
				Validate(requireText("a plan name")),
			huh.NewInput().Title("Period start (YYYY-MM-DD)").Value(&plan.Period.Start).
				Validate(requireDate),
			huh.NewInput().Title("Period end (YYYY-MM-DD)").Value(&plan.Period.End).
				Validate(requireDate),
			huh.NewSelect[string]().
				Title("Cadence policy").
				Options(
					huh.NewOption("Study/review cycles (1730 timetable)", string(domain.KindTimetable1730)),
					huh.NewOption("Every day is a study day", string(domain.KindDefault)),
				).
				Value(&plan.Kind),
		),
		huh.NewGroup(
			huh.NewInput().Title("Study days per cycle").Value(&studyDays).
				Placeholder("6").Validate(optionalInt),
			huh.NewInput().Title("Review days per cycle").Value(&reviewDays).
				Placeholder("1").Validate(optionalInt),
			huh.NewConfirm().Title("Focus on weak subjects only?").Value(&weakFocus),
			huh.NewInput().Title("Daily study window start (HH:MM)").Value(&windowStart).
				Placeholder("09:00").Validate(optionalClock),
			huh.NewInput().Title("Daily study window end (HH:MM)").Value(&windowEnd).
				Placeholder("18:00").Validate(optionalClock),
		),
	).WithTheme(plancycleHuhTheme()).WithShowHelp(false)

	if err := setup.Run(); err != nil {
		return nil, err
	}

	plan.Options = &importer.OptionsImport{WeakSubjectFocus: &weakFocus}
	if v, err := strconv.Atoi(studyDays); err == nil {
		plan.Options.StudyDays = &v
	}
	if v, err := strconv.Atoi(reviewDays); err == nil {
		plan.Options.ReviewDays = &v
	}

	windowStart = domain.CoalesceStr(windowStart, "09:00")
	windowEnd = domain.CoalesceStr(windowEnd, "18:00")
	for dow := 0; dow < 7; dow++ {
		plan.Blocks = append(plan.Blocks, importer.BlockImport{
			DayOfWeek: dow, BlockIndex: 1, StartTime: windowStart, EndTime: windowEnd,
		})
	}

	for {
		content, more, err := runContentForm(len(plan.Contents))
		if err != nil {
			return nil, err
		}
		plan.Contents = append(plan.Contents, *content)
		if !more {
			break
		}
	}

	return plan, nil
}

// runContentForm collects one content item and whether to add another.
func runContentForm(existing int) (*importer.ContentImport, bool, error) {
	content := &importer.ContentImport{ContentType: string(domain.ContentBook)}
	var startRange, endRange string
	more := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title(fmt.Sprintf("Content #%d id", existing+1)).Value(&content.ContentID).
				Validate(requireText("a content id")),
			huh.NewSelect[string]().
				Title("Content type").
				Options(
					huh.NewOption("Book", string(domain.ContentBook)),
					huh.NewOption("Lecture", string(domain.ContentLecture)),
					huh.NewOption("Custom", string(domain.ContentCustom)),
				).
				Value(&content.ContentType),
			huh.NewInput().Title("Range start (page/episode)").Value(&startRange).
				Validate(requireInt),
			huh.NewInput().Title("Range end (exclusive)").Value(&endRange).
				Validate(requireInt),
			huh.NewInput().Title("Subject").Value(&content.Subject),
			huh.NewConfirm().Title("Add another content?").Value(&more),
		),
	).WithTheme(plancycleHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return nil, false, err
	}

	content.StartRange, _ = strconv.Atoi(startRange)
	content.EndRange, _ = strconv.Atoi(endRange)
	return content, more, nil
}

func requireText(what string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("enter %s", what)
		}
		return nil
	}
}

func requireDate(s string) error {
	if _, err := time.Parse(domain.DateLayout, s); err != nil {
		return fmt.Errorf("enter a date as YYYY-MM-DD")
	}
	return nil
}

func requireInt(s string) error {
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("enter a number")
	}
	return nil
}

func optionalInt(s string) error {
	if s == "" {
		return nil
	}
	return requireInt(s)
}

func optionalClock(s string) error {
	if s == "" {
		return nil
	}
	if _, err := domain.ParseClock(s); err != nil {
		return fmt.Errorf("enter a time as HH:MM")
	}
	return nil
}
