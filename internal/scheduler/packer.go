package scheduler

import (
	"github.com/dhlim/plancycle/internal/domain"
)

// demand is one content's requested minutes for a single date, carrying
// everything the emitted plan rows need.
type demand struct {
	contentType    domain.ContentType
	contentID      string
	minutes        int
	plannedStart   int
	plannedEnd     int
	chapter        string
	dateType       domain.DayType
	cycleDayNumber int
	reschedulable  bool
}

// packDay fits the ordered demands into the date's windows with a greedy
// first-fit sweep. Two cursors track the current window and the minute
// offset inside it; a demand larger than the remaining window space is
// split across window boundaries. Demands left over once every window is
// consumed fail with an insufficient_time diagnostic.
func packDay(date string, periodStart string, windows []domain.TimeRange, demands []demand, nextBlock *int) ([]domain.ScheduledPlan, []FailureReason) {
	var plans []domain.ScheduledPlan
	var failures []FailureReason

	starts := make([]int, len(windows))
	ends := make([]int, len(windows))
	usable := windows[:0:0]
	for _, w := range windows {
		s, err1 := domain.ParseClock(w.Start)
		e, err2 := domain.ParseClock(w.End)
		if err1 != nil || err2 != nil || e <= s {
			continue
		}
		starts[len(usable)] = s
		ends[len(usable)] = e
		usable = append(usable, w)
	}

	slotIndex := 0
	pos := 0 // minutes consumed inside the current window

	for _, d := range demands {
		remaining := d.minutes
		for remaining > 0 {
			if slotIndex >= len(usable) {
				fail := newInsufficientTime(date, periodStart, remaining, 0)
				fail.ContentID = d.contentID
				fail.ContentType = d.contentType
				failures = append(failures, fail)
				break
			}
			space := ends[slotIndex] - starts[slotIndex] - pos
			if space <= 0 {
				slotIndex++
				pos = 0
				continue
			}

			take := remaining
			if take > space {
				take = space
			}
			start := starts[slotIndex] + pos
			plans = append(plans, domain.ScheduledPlan{
				PlanDate:       date,
				BlockIndex:     *nextBlock,
				ContentType:    d.contentType,
				ContentID:      d.contentID,
				PlannedStart:   d.plannedStart,
				PlannedEnd:     d.plannedEnd,
				Chapter:        d.chapter,
				Reschedulable:  d.reschedulable,
				StartTime:      domain.FormatClock(start),
				EndTime:        domain.FormatClock(start + take),
				CycleDayNumber: d.cycleDayNumber,
				DateType:       d.dateType,
			})
			*nextBlock++
			pos += take
			remaining -= take
		}
	}

	return plans, failures
}
