package scheduler

import (
	"testing"

	"github.com/dhlim/plancycle/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateCycle_ThreeFullCycles(t *testing.T) {
	days := CalculateCycle("2025-01-01", "2025-01-21", 6, 1, nil)
	require.Len(t, days, 21)

	reviewDates := make(map[string]bool)
	for _, cd := range days {
		if cd.DayType == domain.DayReview {
			reviewDates[cd.Date] = true
		}
	}
	assert.Equal(t, map[string]bool{
		"2025-01-07": true,
		"2025-01-14": true,
		"2025-01-21": true,
	}, reviewDates)

	assert.Equal(t, 1, days[0].CycleNumber)
	assert.Equal(t, 2, days[7].CycleNumber)
	assert.Equal(t, 3, days[20].CycleNumber)
	assert.Equal(t, 7, days[20].CycleDayNumber)
}

func TestCalculateCycle_ExclusionDoesNotConsumeCyclePosition(t *testing.T) {
	exclusions := []domain.Exclusion{
		{ExclusionDate: "2025-01-03", ExclusionType: domain.ExclusionHoliday},
	}
	days := CalculateCycle("2025-01-01", "2025-01-08", 6, 1, exclusions)
	require.Len(t, days, 8)

	assert.Equal(t, domain.DayExclusion, days[2].DayType)
	assert.Equal(t, 0, days[2].CycleDayNumber)

	// Jan 4 picks up cycle day 3 as if Jan 3 never happened.
	assert.Equal(t, 3, days[3].CycleDayNumber)
	// The review day shifts to Jan 8.
	assert.Equal(t, domain.DayReview, days[7].DayType)
	assert.Equal(t, 7, days[7].CycleDayNumber)
}

func TestCalculateCycle_ExclusionDateWithTimestamp(t *testing.T) {
	exclusions := []domain.Exclusion{
		{ExclusionDate: "2025-01-02T00:00:00.000Z", ExclusionType: domain.ExclusionPersonal},
	}
	days := CalculateCycle("2025-01-01", "2025-01-03", 6, 1, exclusions)
	require.Len(t, days, 3)
	assert.Equal(t, domain.DayExclusion, days[1].DayType)
}

func TestCalculateCycle_InvalidInput(t *testing.T) {
	assert.Nil(t, CalculateCycle("bogus", "2025-01-03", 6, 1, nil))
	assert.Nil(t, CalculateCycle("2025-01-05", "2025-01-03", 6, 1, nil))
	assert.Nil(t, CalculateCycle("2025-01-01", "2025-01-03", 0, 0, nil))
}

func TestCalculateCycle_ZeroReviewDays(t *testing.T) {
	days := CalculateCycle("2025-01-01", "2025-01-14", 6, 0, nil)
	require.Len(t, days, 14)
	for _, cd := range days {
		assert.Equal(t, domain.DayStudy, cd.DayType, "date %s", cd.Date)
	}
	assert.Equal(t, 3, days[13].CycleNumber)
	assert.Equal(t, 2, days[13].CycleDayNumber)
}

func TestStudyDates_OrderPreserved(t *testing.T) {
	days := CalculateCycle("2025-01-01", "2025-01-07", 2, 1, nil)
	assert.Equal(t, []string{
		"2025-01-01", "2025-01-02",
		"2025-01-04", "2025-01-05",
		"2025-01-07",
	}, StudyDates(days))
}
