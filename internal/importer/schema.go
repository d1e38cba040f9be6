package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// PlanFile is the top-level JSON structure for a scheduling request.
type PlanFile struct {
	Name    string         `json:"name"`
	Period  PeriodImport   `json:"period"`
	Kind    string         `json:"kind,omitempty"`
	Options *OptionsImport `json:"options,omitempty"`

	Exclusions       []ExclusionImport       `json:"exclusions,omitempty"`
	AcademySchedules []AcademyImport         `json:"academy_schedules,omitempty"`
	Blocks           []BlockImport           `json:"blocks,omitempty"`
	Contents         []ContentImport         `json:"contents"`
	Durations        []DurationImport        `json:"durations,omitempty"`
	RiskIndex        map[string]float64      `json:"risk_index,omitempty"`
	DateRanges       map[string][]TimeImport `json:"date_ranges,omitempty"`
	DateSlots        map[string][]SlotImport `json:"date_slots,omitempty"`
}

// PeriodImport is the inclusive scheduling period.
type PeriodImport struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// OptionsImport carries the cadence and allocation overrides.
type OptionsImport struct {
	StudyDays        *int  `json:"study_days,omitempty"`
	ReviewDays       *int  `json:"review_days,omitempty"`
	WeakSubjectFocus *bool `json:"weak_subject_focus,omitempty"`

	SubjectAllocations []SubjectAllocationImport `json:"subject_allocations,omitempty"`
	ContentAllocations []ContentAllocationImport `json:"content_allocations,omitempty"`
}

type SubjectAllocationImport struct {
	SubjectID   string `json:"subject_id,omitempty"`
	SubjectName string `json:"subject_name"`
	SubjectType string `json:"subject_type"`
	WeeklyDays  *int   `json:"weekly_days,omitempty"`
}

type ContentAllocationImport struct {
	ContentType string `json:"content_type"`
	ContentID   string `json:"content_id"`
	SubjectType string `json:"subject_type"`
	WeeklyDays  *int   `json:"weekly_days,omitempty"`
}

type ExclusionImport struct {
	Date   string `json:"date"`
	Type   string `json:"type,omitempty"`
	Reason string `json:"reason,omitempty"`
}

type AcademyImport struct {
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Subject   string `json:"subject,omitempty"`
}

type BlockImport struct {
	DayOfWeek  int    `json:"day_of_week"`
	BlockIndex int    `json:"block_index"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

type ContentImport struct {
	ContentType     string `json:"content_type"`
	ContentID       string `json:"content_id"`
	StartRange      int    `json:"start_range"`
	EndRange        int    `json:"end_range"`
	Subject         string `json:"subject,omitempty"`
	SubjectCategory string `json:"subject_category,omitempty"`
	Chapter         string `json:"chapter,omitempty"`
}

type DurationImport struct {
	ContentID       string          `json:"content_id"`
	ContentType     string          `json:"content_type,omitempty"`
	TotalPages      *int            `json:"total_pages,omitempty"`
	DurationMin     *int            `json:"duration_min,omitempty"`
	TotalPageOrTime *int            `json:"total_page_or_time,omitempty"`
	Episodes        []EpisodeImport `json:"episodes,omitempty"`
}

type EpisodeImport struct {
	EpisodeNumber int  `json:"episode_number"`
	DurationMin   *int `json:"duration_min,omitempty"`
}

type TimeImport struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type SlotImport struct {
	Type  string `json:"type"`
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label,omitempty"`
}

// LoadPlanFile reads and parses a plan request JSON file.
func LoadPlanFile(path string) (*PlanFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var plan PlanFile
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("parsing plan file: %w", err)
	}
	return &plan, nil
}
