package scheduler

import (
	"testing"

	"github.com/dhlim/plancycle/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestEstimateMinutes_BookIsTwoMinutesPerPage(t *testing.T) {
	c := testContent(t, "bk-1", domain.ContentBook, 1, 321)

	// Metadata never changes the page heuristic.
	info := &domain.ContentDuration{ContentID: "bk-1", DurationMin: intPtr(9999)}
	assert.Equal(t, 160, EstimateMinutes(c, 1, 81, info))
	assert.Equal(t, 160, EstimateMinutes(c, 1, 81, nil))
}

func TestEstimateMinutes_LectureProratesTotalDuration(t *testing.T) {
	c := testContent(t, "lec-1", domain.ContentLecture, 1, 46)
	info := &domain.ContentDuration{ContentID: "lec-1", DurationMin: intPtr(900)}

	// 900 minutes over 45 episodes, 10 episodes assigned.
	assert.Equal(t, 200, EstimateMinutes(c, 1, 11, info))
}

func TestEstimateMinutes_LectureEpisodeMapWins(t *testing.T) {
	c := testContent(t, "lec-1", domain.ContentLecture, 1, 4)
	info := &domain.ContentDuration{
		ContentID:   "lec-1",
		DurationMin: intPtr(300),
		Episodes: []domain.EpisodeDuration{
			{EpisodeNumber: 1, DurationMin: intPtr(50)},
			{EpisodeNumber: 2, DurationMin: intPtr(70)},
		},
	}

	// Episode 3 has no entry and falls back to 300/3 = 100.
	assert.Equal(t, 220, EstimateMinutes(c, 1, 4, info))
}

func TestEstimateMinutes_LectureDefaultPerEpisode(t *testing.T) {
	c := testContent(t, "lec-1", domain.ContentLecture, 1, 11)
	assert.Equal(t, 300, EstimateMinutes(c, 1, 11, nil))
}

func TestEstimateMinutes_CustomPageLike(t *testing.T) {
	c := testContent(t, "cst-1", domain.ContentCustom, 1, 201)
	info := &domain.ContentDuration{ContentID: "cst-1", TotalPageOrTime: intPtr(200)}

	// Stored value at or above the threshold means pages.
	assert.Equal(t, 100, EstimateMinutes(c, 1, 51, info))
}

func TestEstimateMinutes_CustomMinutesProrated(t *testing.T) {
	c := testContent(t, "cst-1", domain.ContentCustom, 1, 11)
	info := &domain.ContentDuration{ContentID: "cst-1", TotalPageOrTime: intPtr(90)}

	// 90 stored minutes, half the range assigned.
	assert.Equal(t, 45, EstimateMinutes(c, 1, 6, info))
}

func TestEstimateMinutes_CustomWithoutMetadata(t *testing.T) {
	c := testContent(t, "cst-1", domain.ContentCustom, 1, 31)
	assert.Equal(t, 60, EstimateMinutes(c, 1, 31, nil))
}

func TestEstimateMinutes_EmptyRange(t *testing.T) {
	c := testContent(t, "bk-1", domain.ContentBook, 1, 101)
	assert.Equal(t, 0, EstimateMinutes(c, 5, 5, nil))
}

func TestReviewMinutes(t *testing.T) {
	assert.Equal(t, 40, ReviewMinutes(100))
	assert.Equal(t, 10, ReviewMinutes(25))
	assert.Equal(t, 0, ReviewMinutes(0))
}
