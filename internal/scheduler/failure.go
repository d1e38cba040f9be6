package scheduler

import (
	"fmt"
	"time"

	"github.com/dhlim/plancycle/internal/domain"
)

// FailureCode tags a structured scheduling diagnostic.
type FailureCode string

const (
	FailInsufficientTime  FailureCode = "insufficient_time"
	FailInsufficientSlots FailureCode = "insufficient_slots"
	FailNoStudyDays       FailureCode = "no_study_days"
	FailContentAllocation FailureCode = "content_allocation_failed"
	FailRangeDivision     FailureCode = "range_division_failed"
	FailNoPlans           FailureCode = "no_plans_generated"
	FailUnknown           FailureCode = "unknown"
)

// FailureReason describes why scheduling could not proceed for some unit of
// work. Stages return these alongside their values; the engine accumulates
// them and the caller decides whether the run counts as success, partial
// success, or failure.
type FailureReason struct {
	Code    FailureCode
	Message string

	ContentID   string
	ContentType domain.ContentType

	Date      string
	Week      int
	DayOfWeek string

	RequiredMin  int
	AvailableMin int

	Period         string
	TotalDays      int
	ExcludedDays   int
	AllocatedDates int
	TotalAmount    int
}

func newInsufficientTime(date, periodStart string, requiredMin, availableMin int) FailureReason {
	return FailureReason{
		Code:         FailInsufficientTime,
		Message:      fmt.Sprintf("needed %d min on %s but only %d min available", requiredMin, date, availableMin),
		Date:         date,
		Week:         weekNumber(date, periodStart),
		DayOfWeek:    dayOfWeekName(date),
		RequiredMin:  requiredMin,
		AvailableMin: availableMin,
	}
}

func newInsufficientSlots(date, periodStart string, requiredMin int) FailureReason {
	return FailureReason{
		Code:        FailInsufficientSlots,
		Message:     fmt.Sprintf("no usable time slots on %s", date),
		Date:        date,
		Week:        weekNumber(date, periodStart),
		DayOfWeek:   dayOfWeekName(date),
		RequiredMin: requiredMin,
	}
}

func newNoStudyDays(periodStart, periodEnd string, totalDays, excludedDays int) FailureReason {
	return FailureReason{
		Code:         FailNoStudyDays,
		Message:      "no usable study days in the whole period",
		Period:       periodStart + " ~ " + periodEnd,
		TotalDays:    totalDays,
		ExcludedDays: excludedDays,
	}
}

func newContentAllocationFailed(c *domain.ContentItem, policy AllocationPolicy) FailureReason {
	return FailureReason{
		Code:        FailContentAllocation,
		Message:     fmt.Sprintf("no study days allocated for content %s (%s policy)", c.ContentID, policy.SubjectType),
		ContentID:   c.ContentID,
		ContentType: c.ContentType,
	}
}

func newRangeDivisionFailed(c *domain.ContentItem, allocatedDates int) FailureReason {
	return FailureReason{
		Code:           FailRangeDivision,
		Message:        fmt.Sprintf("could not divide %d units of content %s across %d dates", c.TotalAmount(), c.ContentID, allocatedDates),
		ContentID:      c.ContentID,
		ContentType:    c.ContentType,
		TotalAmount:    c.TotalAmount(),
		AllocatedDates: allocatedDates,
	}
}

func newNoPlansGenerated() FailureReason {
	return FailureReason{
		Code:    FailNoPlans,
		Message: "no plans were generated; check content allocation and time slot settings",
	}
}

func newMalformedAllocation(detail string) FailureReason {
	return FailureReason{
		Code:    FailUnknown,
		Message: "malformed allocation entry skipped: " + detail,
	}
}

// weekNumber is the 1-based week of date counted from the period start.
// Returns 0 when either date fails to parse.
func weekNumber(date, periodStart string) int {
	d, err1 := time.Parse(domain.DateLayout, date)
	s, err2 := time.Parse(domain.DateLayout, periodStart)
	if err1 != nil || err2 != nil || d.Before(s) {
		return 0
	}
	return int(d.Sub(s).Hours()/24)/7 + 1
}

func dayOfWeekName(date string) string {
	d, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return ""
	}
	return d.Weekday().String()
}
