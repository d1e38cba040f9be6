package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dhlim/plancycle/internal/domain"
	"github.com/dhlim/plancycle/internal/scheduler"
)

// RenderTimetable renders the plans of one scheduling run grouped by date.
func RenderTimetable(title string, plans []*domain.ScheduledPlan) string {
	var b strings.Builder
	b.WriteString(Header(title))
	b.WriteString("\n")

	if len(plans) == 0 {
		b.WriteString(Dim("No plans generated.") + "\n")
		return b.String()
	}

	var currentDate string
	var rows [][]string
	flush := func() {
		if currentDate == "" {
			return
		}
		b.WriteString("\n" + Bold(currentDate) + " " + dateLabel(plans, currentDate) + "\n")
		b.WriteString(RenderTable([]string{"TIME", "CONTENT", "RANGE", "MIN"}, rows))
		rows = nil
	}

	for _, p := range plans {
		if p.PlanDate != currentDate {
			flush()
			currentDate = p.PlanDate
		}
		rows = append(rows, []string{
			fmt.Sprintf("%s-%s", p.StartTime, p.EndTime),
			fmt.Sprintf("%s (%s)", p.ContentID, p.ContentType),
			rangeLabel(p),
			fmt.Sprintf("%d", p.Minutes()),
		})
	}
	flush()

	return b.String()
}

func dateLabel(plans []*domain.ScheduledPlan, date string) string {
	for _, p := range plans {
		if p.PlanDate == date {
			return DayTypeLabel(p.DateType)
		}
	}
	return ""
}

func rangeLabel(p *domain.ScheduledPlan) string {
	unit := "p."
	if p.ContentType == domain.ContentLecture {
		unit = "ep."
	}
	if p.PlannedStart == p.PlannedEnd {
		return fmt.Sprintf("%s%d", unit, p.PlannedStart)
	}
	return fmt.Sprintf("%s%d-%d", unit, p.PlannedStart, p.PlannedEnd)
}

// RenderGroupList renders saved plan groups as a table.
func RenderGroupList(groups []*domain.PlanGroup) string {
	if len(groups) == 0 {
		return Dim("No saved plan groups.") + "\n"
	}

	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{
			shortID(g.ID),
			g.Name,
			fmt.Sprintf("%s ~ %s", g.PeriodStart, g.PeriodEnd),
			string(g.Kind),
			g.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	return RenderTable([]string{"ID", "NAME", "PERIOD", "KIND", "CREATED"}, rows)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// RenderFailures renders scheduling diagnostics as warning lines.
func RenderFailures(failures []scheduler.FailureReason) string {
	if len(failures) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleYellow.Render(fmt.Sprintf("%d scheduling warning(s):", len(failures))) + "\n")
	for _, f := range failures {
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			failureStyle(f.Code).Render("●"),
			Dim(string(f.Code)),
			f.Message,
		))
	}
	return b.String()
}

func failureStyle(code scheduler.FailureCode) lipgloss.Style {
	switch code {
	case scheduler.FailNoStudyDays, scheduler.FailNoPlans:
		return StyleRed
	case scheduler.FailInsufficientTime, scheduler.FailInsufficientSlots:
		return StyleYellow
	default:
		return StylePurple
	}
}
