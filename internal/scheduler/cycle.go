package scheduler

import (
	"strings"
	"time"

	"github.com/dhlim/plancycle/internal/domain"
)

// CalculateCycle partitions every date from periodStart to periodEnd
// (inclusive) into repeating cycles of studyDays study days followed by
// reviewDays review days. Excluded dates are marked but do not consume a
// cycle position. Pure and deterministic.
func CalculateCycle(periodStart, periodEnd string, studyDays, reviewDays int, exclusions []domain.Exclusion) []domain.CycleDay {
	start, err := time.Parse(domain.DateLayout, periodStart)
	if err != nil {
		return nil
	}
	end, err := time.Parse(domain.DateLayout, periodEnd)
	if err != nil || end.Before(start) {
		return nil
	}

	excluded := make(map[string]bool, len(exclusions))
	for _, e := range exclusions {
		// Tolerate timestamps in exclusion dates.
		date, _, _ := strings.Cut(e.ExclusionDate, "T")
		excluded[date] = true
	}

	cycleLength := studyDays + reviewDays
	if cycleLength <= 0 {
		return nil
	}

	var result []domain.CycleDay
	cycleDayNumber := 0
	cycleNumber := 1

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format(domain.DateLayout)

		if excluded[date] {
			result = append(result, domain.CycleDay{
				Date:           date,
				DayType:        domain.DayExclusion,
				CycleDayNumber: 0,
				CycleNumber:    cycleNumber,
			})
			continue
		}

		cycleDayNumber++
		if cycleDayNumber > cycleLength {
			cycleDayNumber = 1
			cycleNumber++
		}

		dayType := domain.DayStudy
		if cycleDayNumber > studyDays {
			dayType = domain.DayReview
		}

		result = append(result, domain.CycleDay{
			Date:           date,
			DayType:        dayType,
			CycleDayNumber: cycleDayNumber,
			CycleNumber:    cycleNumber,
		})
	}

	return result
}

// StudyDates returns the study-day dates of cycleDays in order.
func StudyDates(cycleDays []domain.CycleDay) []string {
	var dates []string
	for _, cd := range cycleDays {
		if cd.DayType == domain.DayStudy {
			dates = append(dates, cd.Date)
		}
	}
	return dates
}
