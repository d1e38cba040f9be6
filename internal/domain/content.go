package domain

import "fmt"

// ContentItem is one schedulable unit of study material. The range
// [StartRange, EndRange) is measured in pages for books, episodes for
// lectures, and opaque units for custom content. Immutable during a
// scheduling run.
type ContentItem struct {
	ContentType     ContentType
	ContentID       string
	StartRange      int
	EndRange        int
	Subject         string
	SubjectCategory string
	Chapter         string
}

// NewContentItem validates the range invariant (EndRange > StartRange).
// An invalid range is a programmer error, not a scheduling diagnostic.
func NewContentItem(contentType ContentType, contentID string, startRange, endRange int) (*ContentItem, error) {
	if contentID == "" {
		return nil, fmt.Errorf("content id is required")
	}
	if endRange <= startRange {
		return nil, fmt.Errorf("content %s: end_range (%d) must be greater than start_range (%d)", contentID, endRange, startRange)
	}
	return &ContentItem{
		ContentType: contentType,
		ContentID:   contentID,
		StartRange:  startRange,
		EndRange:    endRange,
	}, nil
}

// TotalAmount is the number of units the item covers.
func (c *ContentItem) TotalAmount() int {
	return c.EndRange - c.StartRange
}

// SubjectKey returns the normalized subject name used for risk lookups.
func (c *ContentItem) SubjectKey() string {
	return NormalizeSubject(c.Subject)
}

// ContentDuration carries externally supplied duration metadata for one
// content item. All fields are optional; the duration estimator falls back
// to per-unit heuristics when they are absent.
type ContentDuration struct {
	ContentID       string
	ContentType     ContentType
	TotalPages      *int
	DurationMin     *int // whole-content duration in minutes
	TotalPageOrTime *int // custom content: page count or total minutes
	Episodes        []EpisodeDuration
}

// EpisodeDuration is the known length of a single lecture episode.
type EpisodeDuration struct {
	EpisodeNumber int
	DurationMin   *int
}

// RiskIndex is an externally computed weakness indicator for a subject.
// Higher scores sort earlier when packing a day.
type RiskIndex struct {
	RiskScore float64
}
