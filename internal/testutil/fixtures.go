package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dhlim/plancycle/internal/domain"
	"github.com/google/uuid"
)

var fixtureCounter atomic.Int64

// PlanGroupOption mutates a fixture plan group before it is returned.
type PlanGroupOption func(*domain.PlanGroup)

func WithKind(kind domain.SchedulerKind) PlanGroupOption {
	return func(g *domain.PlanGroup) {
		g.Kind = kind
	}
}

func WithCadence(studyDays, reviewDays int) PlanGroupOption {
	return func(g *domain.PlanGroup) {
		g.StudyDays = studyDays
		g.ReviewDays = reviewDays
	}
}

// MakePlanGroup builds a persisted-shape plan group covering a one-week
// period in January 2025.
func MakePlanGroup(name string, opts ...PlanGroupOption) *domain.PlanGroup {
	g := &domain.PlanGroup{
		ID:          uuid.New().String(),
		Name:        name,
		PeriodStart: "2025-01-01",
		PeriodEnd:   "2025-01-07",
		Kind:        domain.KindTimetable1730,
		StudyDays:   6,
		ReviewDays:  1,
		CreatedAt:   time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// MakeScheduledPlan builds one persisted-shape plan entry in the group.
func MakeScheduledPlan(groupID, date string, blockIndex int) *domain.ScheduledPlan {
	n := fixtureCounter.Add(1)
	return &domain.ScheduledPlan{
		ID:             uuid.New().String(),
		GroupID:        groupID,
		PlanDate:       date,
		BlockIndex:     blockIndex,
		ContentType:    domain.ContentBook,
		ContentID:      fmt.Sprintf("bk-%03d", n),
		PlannedStart:   1,
		PlannedEnd:     10,
		Reschedulable:  true,
		StartTime:      "09:00",
		EndTime:        "09:20",
		CycleDayNumber: 1,
		DateType:       domain.DayStudy,
	}
}

// MakeContent builds a content item with a 100-unit range.
func MakeContent(contentType domain.ContentType, subject string) *domain.ContentItem {
	n := fixtureCounter.Add(1)
	return &domain.ContentItem{
		ContentType: contentType,
		ContentID:   fmt.Sprintf("%s-%03d", contentType, n),
		StartRange:  1,
		EndRange:    101,
		Subject:     subject,
	}
}
