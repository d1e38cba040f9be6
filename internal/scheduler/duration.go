package scheduler

import (
	"math"

	"github.com/dhlim/plancycle/internal/domain"
)

const (
	// Per-unit heuristics when no duration metadata exists.
	minutesPerPage    = 2
	minutesPerEpisode = 30

	// Custom content with at least this many stored units is treated as
	// page-like; smaller values are interpreted as total minutes.
	customPageThreshold = 100

	// Review passes cover ground already studied and run shorter.
	reviewFactor = 0.4
)

// EstimateMinutes converts the [start, end) sub-range of a content into an
// estimated number of minutes. Explicit duration metadata takes precedence
// over the per-unit heuristics. Pure function; never consults a clock.
func EstimateMinutes(c *domain.ContentItem, start, end int, info *domain.ContentDuration) int {
	amount := end - start
	if amount <= 0 {
		return 0
	}

	switch c.ContentType {
	case domain.ContentLecture:
		return lectureMinutes(c, start, end, info)

	case domain.ContentBook:
		// Pages are assumed uniform cost regardless of metadata.
		return amount * minutesPerPage

	default:
		return customMinutes(c, amount, info)
	}
}

func lectureMinutes(c *domain.ContentItem, start, end int, info *domain.ContentDuration) int {
	amount := end - start

	if info == nil {
		return amount * minutesPerEpisode
	}

	if len(info.Episodes) > 0 {
		perEpisode := episodeDurations(info)
		fallback := episodeFallbackMinutes(c, info)
		total := 0
		for ep := start; ep < end; ep++ {
			if min, ok := perEpisode[ep]; ok {
				total += min
			} else {
				total += fallback
			}
		}
		return total
	}

	if info.DurationMin != nil && c.TotalAmount() > 0 {
		return roundMinutes(float64(*info.DurationMin) / float64(c.TotalAmount()) * float64(amount))
	}

	return amount * minutesPerEpisode
}

// episodeDurations indexes the known positive per-episode durations.
func episodeDurations(info *domain.ContentDuration) map[int]int {
	durations := make(map[int]int, len(info.Episodes))
	for _, ep := range info.Episodes {
		if ep.EpisodeNumber > 0 && ep.DurationMin != nil && *ep.DurationMin > 0 {
			durations[ep.EpisodeNumber] = *ep.DurationMin
		}
	}
	return durations
}

func episodeFallbackMinutes(c *domain.ContentItem, info *domain.ContentDuration) int {
	if info.DurationMin != nil && c.TotalAmount() > 0 {
		return roundMinutes(float64(*info.DurationMin) / float64(c.TotalAmount()))
	}
	return minutesPerEpisode
}

func customMinutes(c *domain.ContentItem, amount int, info *domain.ContentDuration) int {
	if info == nil || info.TotalPageOrTime == nil {
		return amount * minutesPerPage
	}

	stored := *info.TotalPageOrTime
	if stored >= customPageThreshold {
		return amount * minutesPerPage
	}

	// Small stored values are a total-minutes figure; prorate by the
	// fraction of the content this range covers.
	if c.TotalAmount() <= 0 {
		return stored
	}
	return roundMinutes(float64(stored) * float64(amount) / float64(c.TotalAmount()))
}

// ReviewMinutes shortens a study estimate for a review pass.
func ReviewMinutes(studyMinutes int) int {
	return roundMinutes(float64(studyMinutes) * reviewFactor)
}

func roundMinutes(v float64) int {
	return int(math.Round(v))
}
