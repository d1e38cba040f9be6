package scheduler

import (
	"testing"

	"github.com/dhlim/plancycle/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allWeekBlocks opens 09:00-18:00 every day of the week.
func allWeekBlocks() []domain.Block {
	var blocks []domain.Block
	for dow := 0; dow < 7; dow++ {
		blocks = append(blocks, domain.Block{
			DayOfWeek: dow, BlockIndex: 1, StartTime: "09:00", EndTime: "18:00",
			DurationMinutes: 540,
		})
	}
	return blocks
}

func TestEngine_SingleBookOverOneCycle(t *testing.T) {
	c := testContent(t, "bk-1", domain.ContentBook, 1, 61)
	e := newTestEngine(t, &Context{
		PeriodStart: "2025-01-01",
		PeriodEnd:   "2025-01-07",
		Contents:    []*domain.ContentItem{c},
		Blocks:      allWeekBlocks(),
	})

	plans, fails := e.Generate()
	require.Empty(t, fails)
	require.Len(t, plans, 7, "six study plans plus one review plan")

	var study, review []domain.ScheduledPlan
	for _, p := range plans {
		switch p.DateType {
		case domain.DayStudy:
			study = append(study, p)
		case domain.DayReview:
			review = append(review, p)
		}
	}
	require.Len(t, study, 6)
	require.Len(t, review, 1)

	// 10 pages a day at 2 min/page, back to back from window open.
	for _, p := range study {
		assert.Equal(t, 20, p.Minutes())
		assert.Equal(t, "09:00", p.StartTime)
		assert.Equal(t, 1, p.BlockIndex)
	}

	// Ranges tile the whole book with inclusive ends.
	assert.Equal(t, 1, study[0].PlannedStart)
	assert.Equal(t, 10, study[0].PlannedEnd)
	prev := study[0]
	for _, p := range study[1:] {
		assert.Equal(t, prev.PlannedEnd+1, p.PlannedStart)
		prev = p
	}
	assert.Equal(t, 60, study[5].PlannedEnd)

	// Review covers the cycle's full studied range at the review factor.
	r := review[0]
	assert.Equal(t, "2025-01-07", r.PlanDate)
	assert.Equal(t, 1, r.PlannedStart)
	assert.Equal(t, 60, r.PlannedEnd)
	assert.Equal(t, 48, r.Minutes(), "0.4 of 120 studied minutes")
}

func TestEngine_GenerateIsIdempotent(t *testing.T) {
	c := testContent(t, "bk-1", domain.ContentBook, 1, 61)
	e := newTestEngine(t, &Context{
		PeriodStart: "2025-01-01",
		PeriodEnd:   "2025-01-07",
		Contents:    []*domain.ContentItem{c},
		Blocks:      allWeekBlocks(),
	})

	plans1, fails1 := e.Generate()
	plans2, fails2 := e.Generate()
	assert.Equal(t, plans1, plans2)
	assert.Equal(t, fails1, fails2)
}

func TestEngine_AllDatesExcluded(t *testing.T) {
	var exclusions []domain.Exclusion
	for _, d := range []string{"2025-01-01", "2025-01-02", "2025-01-03"} {
		exclusions = append(exclusions, domain.Exclusion{ExclusionDate: d, ExclusionType: domain.ExclusionHoliday})
	}
	c := testContent(t, "bk-1", domain.ContentBook, 1, 61)
	e := newTestEngine(t, &Context{
		PeriodStart: "2025-01-01",
		PeriodEnd:   "2025-01-03",
		Contents:    []*domain.ContentItem{c},
		Blocks:      allWeekBlocks(),
		Exclusions:  exclusions,
	})

	plans, fails := e.Generate()
	assert.Empty(t, plans)
	require.Len(t, fails, 1)
	assert.Equal(t, FailNoStudyDays, fails[0].Code)
	assert.Equal(t, 3, fails[0].TotalDays)
	assert.Equal(t, 3, fails[0].ExcludedDays)
}

func TestEngine_DefaultKindHasNoReviewDays(t *testing.T) {
	c := testContent(t, "bk-1", domain.ContentBook, 1, 61)
	e := newTestEngine(t, &Context{
		PeriodStart: "2025-01-01",
		PeriodEnd:   "2025-01-07",
		Kind:        domain.KindDefault,
		Contents:    []*domain.ContentItem{c},
		Blocks:      allWeekBlocks(),
	})

	plans, fails := e.Generate()
	require.Empty(t, fails)
	require.Len(t, plans, 7)
	for _, p := range plans {
		assert.Equal(t, domain.DayStudy, p.DateType)
	}
}

func TestEngine_NoWindowsOnStudyDay(t *testing.T) {
	c := testContent(t, "bk-1", domain.ContentBook, 1, 61)
	e := newTestEngine(t, &Context{
		PeriodStart: "2025-01-01",
		PeriodEnd:   "2025-01-06",
		Contents:    []*domain.ContentItem{c},
	})

	plans, fails := e.Generate()
	assert.Empty(t, plans)

	var slotFails, noPlans int
	for _, f := range fails {
		switch f.Code {
		case FailInsufficientSlots:
			slotFails++
		case FailNoPlans:
			noPlans++
		}
	}
	assert.Equal(t, 6, slotFails, "one per study day")
	assert.Equal(t, 1, noPlans)
}

func TestEngine_WeakSubjectFocusFiltersContents(t *testing.T) {
	weak := testContent(t, "bk-weak", domain.ContentBook, 1, 61)
	weak.Subject = "Math"
	strong := testContent(t, "bk-strong", domain.ContentBook, 1, 61)
	strong.Subject = "English"

	e := newTestEngine(t, &Context{
		PeriodStart: "2025-01-01",
		PeriodEnd:   "2025-01-06",
		Options:     Options{StudyDays: 6, WeakSubjectFocus: true},
		Contents:    []*domain.ContentItem{strong, weak},
		Blocks:      allWeekBlocks(),
		RiskIndex: map[string]domain.RiskIndex{
			"math":    {RiskScore: 72},
			"english": {RiskScore: 10},
		},
	})

	plans, _ := e.Generate()
	require.NotEmpty(t, plans)
	for _, p := range plans {
		assert.Equal(t, "bk-weak", p.ContentID)
	}
}

func TestEngine_WeakFocusFallsBackWhenNothingIsWeak(t *testing.T) {
	c := testContent(t, "bk-1", domain.ContentBook, 1, 61)
	c.Subject = "English"

	e := newTestEngine(t, &Context{
		PeriodStart: "2025-01-01",
		PeriodEnd:   "2025-01-06",
		Options:     Options{StudyDays: 6, WeakSubjectFocus: true},
		Contents:    []*domain.ContentItem{c},
		Blocks:      allWeekBlocks(),
		RiskIndex:   map[string]domain.RiskIndex{"english": {RiskScore: 5}},
	})

	plans, _ := e.Generate()
	assert.NotEmpty(t, plans, "empty filter result must fall back to all contents")
}

func TestEngine_RiskOrdersPackingPriority(t *testing.T) {
	math := testContent(t, "bk-math", domain.ContentBook, 1, 61)
	math.Subject = "Math"
	english := testContent(t, "bk-english", domain.ContentBook, 1, 61)
	english.Subject = "English"

	e := newTestEngine(t, &Context{
		PeriodStart: "2025-01-01",
		PeriodEnd:   "2025-01-06",
		Options:     Options{StudyDays: 6},
		Contents:    []*domain.ContentItem{english, math},
		Blocks:      allWeekBlocks(),
		RiskIndex: map[string]domain.RiskIndex{
			"math":    {RiskScore: 80},
			"english": {RiskScore: 40},
		},
	})

	plans, fails := e.Generate()
	require.Empty(t, fails)
	require.NotEmpty(t, plans)
	assert.Equal(t, "bk-math", plans[0].ContentID, "higher risk packs first")
	assert.Equal(t, "09:00", plans[0].StartTime)
}

func TestEngine_StrategyContentPacksBeforeWeakness(t *testing.T) {
	strat := testContent(t, "bk-strat", domain.ContentBook, 1, 61)
	strat.SubjectCategory = "Science"
	weak := testContent(t, "bk-weak", domain.ContentBook, 1, 61)
	weak.Subject = "Math"

	e := newTestEngine(t, &Context{
		PeriodStart: "2025-01-01",
		PeriodEnd:   "2025-01-06",
		Options: Options{
			StudyDays: 6,
			SubjectAllocations: []SubjectAllocation{
				{SubjectName: "Science", SubjectType: domain.SubjectStrategy, WeeklyDays: intPtr(2)},
			},
		},
		Contents: []*domain.ContentItem{weak, strat},
		Blocks:   allWeekBlocks(),
		RiskIndex: map[string]domain.RiskIndex{
			"math": {RiskScore: 95},
		},
	})

	plans, fails := e.Generate()
	require.Empty(t, fails)

	// On the first study day both contents have demands; the strategy
	// content wins the first window despite the lower risk.
	var first *domain.ScheduledPlan
	for i := range plans {
		if plans[i].PlanDate == "2025-01-01" {
			first = &plans[i]
			break
		}
	}
	require.NotNil(t, first)
	assert.Equal(t, "bk-strat", first.ContentID)
}

func TestEngine_MalformedAllocationSurfacesDiagnostic(t *testing.T) {
	c := testContent(t, "bk-1", domain.ContentBook, 1, 61)
	e := newTestEngine(t, &Context{
		PeriodStart: "2025-01-01",
		PeriodEnd:   "2025-01-06",
		Options: Options{
			StudyDays: 6,
			SubjectAllocations: []SubjectAllocation{
				{SubjectName: "", SubjectType: domain.SubjectStrategy},
			},
		},
		Contents: []*domain.ContentItem{c},
		Blocks:   allWeekBlocks(),
	})

	plans, fails := e.Generate()
	assert.NotEmpty(t, plans, "bad allocation rows never block scheduling")
	require.Len(t, fails, 1)
	assert.Equal(t, FailUnknown, fails[0].Code)
}

func TestEngine_NewRejectsInvalidInput(t *testing.T) {
	_, err := New(&Context{PeriodStart: "bogus", PeriodEnd: "2025-01-07", Kind: domain.KindDefault})
	assert.Error(t, err)

	_, err = New(&Context{PeriodStart: "2025-01-07", PeriodEnd: "2025-01-01", Kind: domain.KindDefault})
	assert.Error(t, err)

	_, err = New(&Context{PeriodStart: "2025-01-01", PeriodEnd: "2025-01-07", Kind: "weekly"})
	assert.Error(t, err)
}

func TestEngine_ReviewAggregatesPerCycle(t *testing.T) {
	c := testContent(t, "bk-1", domain.ContentBook, 1, 121)
	e := newTestEngine(t, &Context{
		PeriodStart: "2025-01-01",
		PeriodEnd:   "2025-01-14",
		Contents:    []*domain.ContentItem{c},
		Blocks:      allWeekBlocks(),
	})

	plans, fails := e.Generate()
	require.Empty(t, fails)

	var reviews []domain.ScheduledPlan
	for _, p := range plans {
		if p.DateType == domain.DayReview {
			reviews = append(reviews, p)
		}
	}
	require.Len(t, reviews, 2)

	// Each review spans only its own cycle's studied pages.
	assert.Equal(t, "2025-01-07", reviews[0].PlanDate)
	assert.Equal(t, 1, reviews[0].PlannedStart)
	assert.Equal(t, 60, reviews[0].PlannedEnd)
	assert.Equal(t, "2025-01-14", reviews[1].PlanDate)
	assert.Equal(t, 61, reviews[1].PlannedStart)
	assert.Equal(t, 120, reviews[1].PlannedEnd)
}
