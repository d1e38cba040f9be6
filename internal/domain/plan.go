package domain

import "time"

// ScheduledPlan is one emitted timetable entry: a contiguous clock-time
// window on one date covering a sub-range of one content item. Immutable
// once emitted; the engine only appends to its output list.
// ID and GroupID stay empty until the service layer persists the plan.
type ScheduledPlan struct {
	ID      string
	GroupID string

	PlanDate    string // YYYY-MM-DD
	BlockIndex  int    // sequence within the day
	ContentType ContentType
	ContentID   string

	// Planned range within the content. End is inclusive, matching how
	// ranges are presented to students ("pages 10-24").
	PlannedStart int
	PlannedEnd   int

	Chapter        string
	Reschedulable  bool
	StartTime      string // HH:MM, empty when no clock placement was possible
	EndTime        string // HH:MM
	CycleDayNumber int
	DateType       DayType
}

// Minutes returns the clock length of the entry, or 0 without clock times.
func (p *ScheduledPlan) Minutes() int {
	return TimeRange{Start: p.StartTime, End: p.EndTime}.Minutes()
}

// PlanGroup is one saved scheduling run, grouping the plans it produced.
type PlanGroup struct {
	ID          string
	Name        string
	PeriodStart string
	PeriodEnd   string
	Kind        SchedulerKind
	StudyDays   int
	ReviewDays  int
	CreatedAt   time.Time
}
