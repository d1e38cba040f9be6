package scheduler

import "github.com/dhlim/plancycle/internal/domain"

// Context carries every input for one scheduling run. All data is
// pre-loaded by the caller; the engine performs no I/O.
type Context struct {
	PeriodStart string // YYYY-MM-DD, inclusive
	PeriodEnd   string // YYYY-MM-DD, inclusive
	Kind        domain.SchedulerKind

	Exclusions       []domain.Exclusion
	AcademySchedules []domain.AcademySchedule
	Blocks           []domain.Block
	Contents         []*domain.ContentItem

	Options Options

	// RiskIndex maps normalized subject names to externally computed
	// weakness scores used for packing priority.
	RiskIndex map[string]domain.RiskIndex

	// Durations maps content ids to duration metadata.
	Durations map[string]*domain.ContentDuration

	// DateRanges and DateSlots are per-date availability produced by an
	// upstream daily-scheduling step. When present they take priority
	// over the weekly Blocks fallback.
	DateRanges map[string][]domain.TimeRange
	DateSlots  map[string][]domain.TimeSlot
}

// Options is the validated scheduler configuration.
type Options struct {
	StudyDays        int
	ReviewDays       int
	WeakSubjectFocus bool

	SubjectAllocations []SubjectAllocation
	ContentAllocations []ContentAllocation
}

const (
	defaultStudyDays  = 6
	defaultReviewDays = 1

	// Contents whose subject scores at or above this threshold survive the
	// weak-subject-focus filter.
	weakFocusRiskThreshold = 30
)
