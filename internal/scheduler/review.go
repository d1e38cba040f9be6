package scheduler

import (
	"github.com/dhlim/plancycle/internal/domain"
)

// reviewAggregate accumulates one content's study coverage within a cycle.
type reviewAggregate struct {
	contentType  domain.ContentType
	contentID    string
	chapter      string
	minStart     int
	maxEnd       int
	studyMinutes int
}

// composeReviewDemands turns a cycle's study plans into review demands. Each
// content reviewed spans the union of the ranges it was studied over in the
// cycle, scaled to a fraction of its study time. Demand order follows first
// appearance in the study plans, which already carry the packing priority.
func composeReviewDemands(cyclePlans []domain.ScheduledPlan, cycleDayNumber int) []demand {
	byContent := make(map[string]*reviewAggregate)
	var order []string

	for _, p := range cyclePlans {
		if p.DateType != domain.DayStudy {
			continue
		}
		agg, ok := byContent[p.ContentID]
		if !ok {
			agg = &reviewAggregate{
				contentType: p.ContentType,
				contentID:   p.ContentID,
				chapter:     p.Chapter,
				minStart:    p.PlannedStart,
				maxEnd:      p.PlannedEnd,
			}
			byContent[p.ContentID] = agg
			order = append(order, p.ContentID)
		}
		if p.PlannedStart < agg.minStart {
			agg.minStart = p.PlannedStart
		}
		if p.PlannedEnd > agg.maxEnd {
			agg.maxEnd = p.PlannedEnd
		}
		agg.studyMinutes += p.Minutes()
	}

	var demands []demand
	for _, id := range order {
		agg := byContent[id]
		minutes := ReviewMinutes(agg.studyMinutes)
		if minutes <= 0 {
			continue
		}
		demands = append(demands, demand{
			contentType:    agg.contentType,
			contentID:      agg.contentID,
			minutes:        minutes,
			plannedStart:   agg.minStart,
			plannedEnd:     agg.maxEnd,
			chapter:        agg.chapter,
			dateType:       domain.DayReview,
			cycleDayNumber: cycleDayNumber,
			reschedulable:  true,
		})
	}
	return demands
}
