package scheduler

import (
	"testing"

	"github.com/dhlim/plancycle/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func studyDemand(id string, minutes int) demand {
	return demand{
		contentType:    domain.ContentBook,
		contentID:      id,
		minutes:        minutes,
		plannedStart:   1,
		plannedEnd:     10,
		dateType:       domain.DayStudy,
		cycleDayNumber: 1,
		reschedulable:  true,
	}
}

func TestPackDay_SequentialFirstFit(t *testing.T) {
	windows := []domain.TimeRange{{Start: "09:00", End: "12:00"}}
	demands := []demand{studyDemand("a", 60), studyDemand("b", 90)}

	nextBlock := 1
	plans, fails := packDay("2025-01-01", "2025-01-01", windows, demands, &nextBlock)

	require.Empty(t, fails)
	require.Len(t, plans, 2)
	assert.Equal(t, "09:00", plans[0].StartTime)
	assert.Equal(t, "10:00", plans[0].EndTime)
	assert.Equal(t, "10:00", plans[1].StartTime)
	assert.Equal(t, "11:30", plans[1].EndTime)
	assert.Equal(t, 1, plans[0].BlockIndex)
	assert.Equal(t, 2, plans[1].BlockIndex)
}

func TestPackDay_DemandSplitsAcrossWindows(t *testing.T) {
	windows := []domain.TimeRange{
		{Start: "09:00", End: "10:00"},
		{Start: "14:00", End: "16:00"},
	}
	demands := []demand{studyDemand("a", 90)}

	nextBlock := 1
	plans, fails := packDay("2025-01-01", "2025-01-01", windows, demands, &nextBlock)

	require.Empty(t, fails)
	require.Len(t, plans, 2)
	assert.Equal(t, "09:00", plans[0].StartTime)
	assert.Equal(t, "10:00", plans[0].EndTime)
	assert.Equal(t, "14:00", plans[1].StartTime)
	assert.Equal(t, "14:30", plans[1].EndTime)
	assert.Equal(t, "a", plans[1].ContentID)
}

func TestPackDay_OverflowReportsInsufficientTime(t *testing.T) {
	windows := []domain.TimeRange{{Start: "09:00", End: "10:00"}}
	demands := []demand{studyDemand("a", 45), studyDemand("b", 60)}

	nextBlock := 1
	plans, fails := packDay("2025-01-01", "2025-01-01", windows, demands, &nextBlock)

	// b gets the 15 minutes left, then the day is exhausted.
	require.Len(t, plans, 2)
	assert.Equal(t, "09:45", plans[1].StartTime)
	assert.Equal(t, "10:00", plans[1].EndTime)

	require.Len(t, fails, 1)
	assert.Equal(t, FailInsufficientTime, fails[0].Code)
	assert.Equal(t, "b", fails[0].ContentID)
	assert.Equal(t, 45, fails[0].RequiredMin)
}

func TestPackDay_ExhaustedDayFailsRemainingDemands(t *testing.T) {
	windows := []domain.TimeRange{{Start: "09:00", End: "09:30"}}
	demands := []demand{studyDemand("a", 30), studyDemand("b", 20), studyDemand("c", 10)}

	nextBlock := 1
	plans, fails := packDay("2025-01-01", "2025-01-01", windows, demands, &nextBlock)

	require.Len(t, plans, 1)
	require.Len(t, fails, 2)
	assert.Equal(t, "b", fails[0].ContentID)
	assert.Equal(t, "c", fails[1].ContentID)
}

func TestPackDay_MalformedWindowsSkipped(t *testing.T) {
	windows := []domain.TimeRange{
		{Start: "12:00", End: "09:00"},
		{Start: "bogus", End: "10:00"},
		{Start: "13:00", End: "14:00"},
	}
	demands := []demand{studyDemand("a", 60)}

	nextBlock := 1
	plans, fails := packDay("2025-01-01", "2025-01-01", windows, demands, &nextBlock)

	require.Empty(t, fails)
	require.Len(t, plans, 1)
	assert.Equal(t, "13:00", plans[0].StartTime)
}

func TestPackDay_NoDoubleBooking(t *testing.T) {
	windows := []domain.TimeRange{
		{Start: "09:00", End: "11:00"},
		{Start: "13:00", End: "15:00"},
	}
	demands := []demand{
		studyDemand("a", 70), studyDemand("b", 50), studyDemand("c", 80),
	}

	nextBlock := 1
	plans, _ := packDay("2025-01-01", "2025-01-01", windows, demands, &nextBlock)

	for i := 1; i < len(plans); i++ {
		prevEnd, err := domain.ParseClock(plans[i-1].EndTime)
		require.NoError(t, err)
		start, err := domain.ParseClock(plans[i].StartTime)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, start, prevEnd,
			"plan %d starts before plan %d ends", i, i-1)
	}
}
