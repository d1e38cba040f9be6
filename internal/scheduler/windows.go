package scheduler

import (
	"sort"
	"time"

	"github.com/dhlim/plancycle/internal/domain"
)

// defaultReviewWindow is assumed on review days that carry no availability
// data at all, so a cycle's review pass is never dropped for missing
// timeline input.
var defaultReviewWindow = domain.TimeRange{Start: "10:00", End: "19:00"}

// StudyWindows picks the ordered usable time windows for one date. Named
// timeline slots (filtered to study-type segments) take priority; raw
// available ranges come next; the weekly block table, minus academy
// commitments, is the final fallback.
func (e *Engine) studyWindows(date string) []domain.TimeRange {
	if slots, ok := e.ctx.DateSlots[date]; ok {
		var windows []domain.TimeRange
		for _, slot := range slots {
			if slot.Type == domain.SlotStudy {
				windows = append(windows, domain.TimeRange{Start: slot.Start, End: slot.End})
			}
		}
		if len(windows) > 0 {
			return windows
		}
	}

	if ranges, ok := e.ctx.DateRanges[date]; ok && len(ranges) > 0 {
		return append([]domain.TimeRange(nil), ranges...)
	}

	return e.blockWindows(date)
}

// reviewWindows is studyWindows with the default window as a last resort.
func (e *Engine) reviewWindows(date string) []domain.TimeRange {
	windows := e.studyWindows(date)
	if len(windows) == 0 {
		return []domain.TimeRange{defaultReviewWindow}
	}
	return windows
}

// blockWindows builds the date's windows from the weekly block table,
// subtracting any academy schedule overlapping the same weekday.
func (e *Engine) blockWindows(date string) []domain.TimeRange {
	d, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return nil
	}
	weekday := int(d.Weekday())

	var blocks []domain.Block
	for _, b := range e.ctx.Blocks {
		if b.DayOfWeek == weekday {
			blocks = append(blocks, b)
		}
	}
	if len(blocks) == 0 {
		return nil
	}
	sort.Slice(blocks, func(i, j int) bool { return blocks[i].BlockIndex < blocks[j].BlockIndex })

	var windows []domain.TimeRange
	for _, b := range blocks {
		windows = append(windows, domain.TimeRange{Start: b.StartTime, End: b.EndTime})
	}

	var blockers []domain.TimeRange
	for _, a := range e.ctx.AcademySchedules {
		if a.DayOfWeek == weekday {
			blockers = append(blockers, domain.TimeRange{Start: a.StartTime, End: a.EndTime})
		}
	}

	return subtractRanges(windows, blockers)
}

// subtractRanges removes every blocker interval from the windows, splitting
// windows where a blocker lands in the middle. Malformed intervals are
// dropped.
func subtractRanges(windows, blockers []domain.TimeRange) []domain.TimeRange {
	type interval struct{ start, end int }

	var blocked []interval
	for _, b := range blockers {
		start, err1 := domain.ParseClock(b.Start)
		end, err2 := domain.ParseClock(b.End)
		if err1 != nil || err2 != nil || end <= start {
			continue
		}
		blocked = append(blocked, interval{start, end})
	}

	var result []domain.TimeRange
	for _, w := range windows {
		start, err1 := domain.ParseClock(w.Start)
		end, err2 := domain.ParseClock(w.End)
		if err1 != nil || err2 != nil || end <= start {
			continue
		}

		free := []interval{{start, end}}
		for _, b := range blocked {
			var next []interval
			for _, f := range free {
				if b.end <= f.start || b.start >= f.end {
					next = append(next, f)
					continue
				}
				if b.start > f.start {
					next = append(next, interval{f.start, b.start})
				}
				if b.end < f.end {
					next = append(next, interval{b.end, f.end})
				}
			}
			free = next
		}

		for _, f := range free {
			result = append(result, domain.TimeRange{
				Start: domain.FormatClock(f.start),
				End:   domain.FormatClock(f.end),
			})
		}
	}

	return result
}
