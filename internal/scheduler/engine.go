package scheduler

import (
	"fmt"
	"time"

	"github.com/dhlim/plancycle/internal/domain"
)

// Engine runs one scheduling pass over a Context. Construct with New,
// call Generate once; repeated calls return the cached result. The engine
// never logs or performs I/O; every problem it hits surfaces as a
// FailureReason next to whatever plans it could still produce.
type Engine struct {
	ctx        *Context
	studyDays  int
	reviewDays int

	generated bool
	plans     []domain.ScheduledPlan
	failures  []FailureReason

	cycleDays []domain.CycleDay
	policies  map[string]AllocationPolicy
}

// New validates the context at the boundary and resolves the cadence for
// the scheduler kind. Invalid periods and unknown kinds are programmer
// errors and fail construction; everything data-shaped is tolerated and
// reported later as diagnostics.
func New(ctx *Context) (*Engine, error) {
	start, err := time.Parse(domain.DateLayout, ctx.PeriodStart)
	if err != nil {
		return nil, fmt.Errorf("invalid period start %q: %w", ctx.PeriodStart, err)
	}
	end, err := time.Parse(domain.DateLayout, ctx.PeriodEnd)
	if err != nil {
		return nil, fmt.Errorf("invalid period end %q: %w", ctx.PeriodEnd, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("period end %s before start %s", ctx.PeriodEnd, ctx.PeriodStart)
	}
	if ctx.Options.StudyDays < 0 || ctx.Options.ReviewDays < 0 {
		return nil, fmt.Errorf("negative cadence: study %d review %d", ctx.Options.StudyDays, ctx.Options.ReviewDays)
	}

	e := &Engine{ctx: ctx}

	switch ctx.Kind {
	case domain.KindTimetable1730:
		e.studyDays = ctx.Options.StudyDays
		e.reviewDays = ctx.Options.ReviewDays
		if e.studyDays == 0 {
			e.studyDays = defaultStudyDays
			if ctx.Options.ReviewDays == 0 {
				e.reviewDays = defaultReviewDays
			}
		}
	case domain.KindDefault:
		// No cadence policy: every workable day is a study day.
		e.studyDays = ctx.Options.StudyDays
		if e.studyDays == 0 {
			e.studyDays = defaultStudyDays
		}
		e.reviewDays = 0
	default:
		return nil, fmt.Errorf("unknown scheduler kind %q", ctx.Kind)
	}

	return e, nil
}

// Generate produces the full plan set for the period. Idempotent: the
// second and later calls return the first run's result unchanged.
func (e *Engine) Generate() ([]domain.ScheduledPlan, []FailureReason) {
	if e.generated {
		return e.plans, e.failures
	}
	e.generated = true

	e.failures = append(e.failures, ValidateAllocations(
		e.ctx.Options.ContentAllocations, e.ctx.Options.SubjectAllocations)...)

	e.cycleDays = CalculateCycle(
		e.ctx.PeriodStart, e.ctx.PeriodEnd, e.studyDays, e.reviewDays, e.ctx.Exclusions)

	studyDates := StudyDates(e.cycleDays)
	if len(studyDates) == 0 {
		excluded := 0
		for _, cd := range e.cycleDays {
			if cd.DayType == domain.DayExclusion {
				excluded++
			}
		}
		e.failures = append(e.failures, newNoStudyDays(
			e.ctx.PeriodStart, e.ctx.PeriodEnd, len(e.cycleDays), excluded))
		return e.plans, e.failures
	}

	contents := e.focusContents()
	e.policies = make(map[string]AllocationPolicy, len(contents))
	for _, c := range contents {
		e.policies[c.ContentID] = EffectiveAllocation(
			c, e.ctx.Options.ContentAllocations, e.ctx.Options.SubjectAllocations)
	}
	ordered := orderContents(contents, e.policies, e.ctx.RiskIndex)

	dayRanges := e.divideContents(ordered)
	e.assignTimeSlots(ordered, dayRanges)

	if len(e.plans) == 0 {
		e.failures = append(e.failures, newNoPlansGenerated())
	}
	return e.plans, e.failures
}

// FailureReasons returns the diagnostics of the last Generate call,
// running one if necessary.
func (e *Engine) FailureReasons() []FailureReason {
	_, failures := e.Generate()
	return failures
}

// focusContents applies the weak-subject focus filter. When the filter
// would leave nothing to schedule it falls back to the full content list.
func (e *Engine) focusContents() []*domain.ContentItem {
	if !e.ctx.Options.WeakSubjectFocus {
		return e.ctx.Contents
	}
	var weak []*domain.ContentItem
	for _, c := range e.ctx.Contents {
		if e.ctx.RiskIndex[c.SubjectKey()].RiskScore >= weakFocusRiskThreshold {
			weak = append(weak, c)
		}
	}
	if len(weak) == 0 {
		return e.ctx.Contents
	}
	return weak
}

// divideContents allocates dates and splits each content's range across
// them. The returned map is content id -> date -> absolute unit range.
// Contents that cannot be placed contribute a diagnostic instead of plans.
func (e *Engine) divideContents(ordered []*domain.ContentItem) map[string]map[string]Range {
	dayRanges := make(map[string]map[string]Range, len(ordered))

	for _, c := range ordered {
		policy := e.policies[c.ContentID]

		dates := AllocateDates(e.cycleDays, policy)
		if len(dates) == 0 {
			e.failures = append(e.failures, newContentAllocationFailed(c, policy))
			continue
		}

		relative := DivideRange(c.TotalAmount(), dates)
		if len(relative) == 0 {
			e.failures = append(e.failures, newRangeDivisionFailed(c, len(dates)))
			continue
		}

		absolute := make(map[string]Range, len(relative))
		for date, r := range relative {
			absolute[date] = Range{Start: c.StartRange + r.Start, End: c.StartRange + r.End}
		}
		dayRanges[c.ContentID] = absolute
	}

	return dayRanges
}

// assignTimeSlots walks the period day by day, packing study demands on
// study days and composing review demands from each cycle's accumulated
// study plans on review days.
func (e *Engine) assignTimeSlots(ordered []*domain.ContentItem, dayRanges map[string]map[string]Range) {
	cycleStudy := make(map[int][]domain.ScheduledPlan)

	for _, cd := range e.cycleDays {
		switch cd.DayType {
		case domain.DayExclusion:
			continue

		case domain.DayStudy:
			demands := e.studyDemands(ordered, dayRanges, cd)
			if len(demands) == 0 {
				continue
			}
			windows := e.studyWindows(cd.Date)
			if len(windows) == 0 {
				required := 0
				for _, d := range demands {
					required += d.minutes
				}
				e.failures = append(e.failures, newInsufficientSlots(cd.Date, e.ctx.PeriodStart, required))
				continue
			}
			nextBlock := 1
			plans, fails := packDay(cd.Date, e.ctx.PeriodStart, windows, demands, &nextBlock)
			e.plans = append(e.plans, plans...)
			e.failures = append(e.failures, fails...)
			cycleStudy[cd.CycleNumber] = append(cycleStudy[cd.CycleNumber], plans...)

		case domain.DayReview:
			demands := composeReviewDemands(cycleStudy[cd.CycleNumber], cd.CycleDayNumber)
			if len(demands) == 0 {
				continue
			}
			nextBlock := 1
			plans, fails := packDay(cd.Date, e.ctx.PeriodStart, e.reviewWindows(cd.Date), demands, &nextBlock)
			e.plans = append(e.plans, plans...)
			e.failures = append(e.failures, fails...)
		}
	}
}

// studyDemands collects each ordered content's share of one study day.
func (e *Engine) studyDemands(ordered []*domain.ContentItem, dayRanges map[string]map[string]Range, cd domain.CycleDay) []demand {
	var demands []demand
	for _, c := range ordered {
		r, ok := dayRanges[c.ContentID][cd.Date]
		if !ok {
			continue
		}
		minutes := EstimateMinutes(c, r.Start, r.End, e.ctx.Durations[c.ContentID])
		if minutes <= 0 {
			continue
		}
		demands = append(demands, demand{
			contentType:    c.ContentType,
			contentID:      c.ContentID,
			minutes:        minutes,
			plannedStart:   r.Start,
			plannedEnd:     r.End - 1, // stored inclusive
			chapter:        c.Chapter,
			dateType:       domain.DayStudy,
			cycleDayNumber: cd.CycleDayNumber,
			reschedulable:  true,
		})
	}
	return demands
}
