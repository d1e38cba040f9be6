package importer

import (
	"fmt"
	"time"

	"github.com/dhlim/plancycle/internal/domain"
)

var (
	validKinds = map[string]bool{
		"":                               true, // empty means no cadence policy
		string(domain.KindDefault):       true,
		string(domain.KindTimetable1730): true,
	}
	validSubjectTypes = map[string]bool{
		string(domain.SubjectStrategy): true,
		string(domain.SubjectWeakness): true,
	}
)

// ValidatePlanFile checks a plan file for errors before conversion.
// Returns every validation error found, not just the first.
func ValidatePlanFile(plan *PlanFile) []error {
	var errs []error

	if plan.Name == "" {
		errs = append(errs, fmt.Errorf("name is required"))
	}
	errs = append(errs, validatePeriod(&plan.Period)...)

	if !validKinds[plan.Kind] {
		errs = append(errs, fmt.Errorf("kind: invalid value %q", plan.Kind))
	}

	errs = append(errs, validateOptions(plan.Options)...)

	if len(plan.Contents) == 0 {
		errs = append(errs, fmt.Errorf("contents: at least one content item is required"))
	}
	for i, c := range plan.Contents {
		errs = append(errs, validateContent(i, &c)...)
	}

	for i, e := range plan.Exclusions {
		if e.Date == "" {
			errs = append(errs, fmt.Errorf("exclusions[%d].date is required", i))
		}
	}
	for i, a := range plan.AcademySchedules {
		errs = append(errs, validateWeekTimes(fmt.Sprintf("academy_schedules[%d]", i), a.DayOfWeek, a.StartTime, a.EndTime)...)
	}
	for i, b := range plan.Blocks {
		errs = append(errs, validateWeekTimes(fmt.Sprintf("blocks[%d]", i), b.DayOfWeek, b.StartTime, b.EndTime)...)
	}

	return errs
}

func validatePeriod(p *PeriodImport) []error {
	var errs []error

	start, startErr := time.Parse(domain.DateLayout, p.Start)
	if p.Start == "" {
		errs = append(errs, fmt.Errorf("period.start is required"))
	} else if startErr != nil {
		errs = append(errs, fmt.Errorf("period.start: invalid date %q (expected YYYY-MM-DD)", p.Start))
	}

	end, endErr := time.Parse(domain.DateLayout, p.End)
	if p.End == "" {
		errs = append(errs, fmt.Errorf("period.end is required"))
	} else if endErr != nil {
		errs = append(errs, fmt.Errorf("period.end: invalid date %q (expected YYYY-MM-DD)", p.End))
	}

	if startErr == nil && endErr == nil && end.Before(start) {
		errs = append(errs, fmt.Errorf("period.end %q must not be before period.start %q", p.End, p.Start))
	}

	return errs
}

func validateOptions(o *OptionsImport) []error {
	if o == nil {
		return nil
	}
	var errs []error

	if o.StudyDays != nil && *o.StudyDays < 0 {
		errs = append(errs, fmt.Errorf("options.study_days must not be negative"))
	}
	if o.ReviewDays != nil && *o.ReviewDays < 0 {
		errs = append(errs, fmt.Errorf("options.review_days must not be negative"))
	}

	for i, a := range o.SubjectAllocations {
		if a.SubjectName == "" {
			errs = append(errs, fmt.Errorf("options.subject_allocations[%d].subject_name is required", i))
		}
		if !validSubjectTypes[a.SubjectType] {
			errs = append(errs, fmt.Errorf("options.subject_allocations[%d].subject_type: invalid value %q", i, a.SubjectType))
		}
	}
	for i, a := range o.ContentAllocations {
		if a.ContentID == "" {
			errs = append(errs, fmt.Errorf("options.content_allocations[%d].content_id is required", i))
		}
		if !validSubjectTypes[a.SubjectType] {
			errs = append(errs, fmt.Errorf("options.content_allocations[%d].subject_type: invalid value %q", i, a.SubjectType))
		}
	}

	return errs
}

func validateContent(i int, c *ContentImport) []error {
	var errs []error

	if c.ContentID == "" {
		errs = append(errs, fmt.Errorf("contents[%d].content_id is required", i))
	}
	if !domain.ValidContentTypes[c.ContentType] {
		errs = append(errs, fmt.Errorf("contents[%d].content_type: invalid value %q", i, c.ContentType))
	}
	if c.EndRange <= c.StartRange {
		errs = append(errs, fmt.Errorf("contents[%d]: end_range (%d) must be greater than start_range (%d)", i, c.EndRange, c.StartRange))
	}

	return errs
}

func validateWeekTimes(prefix string, dayOfWeek int, startTime, endTime string) []error {
	var errs []error

	if dayOfWeek < 0 || dayOfWeek > 6 {
		errs = append(errs, fmt.Errorf("%s.day_of_week must be 0-6, got %d", prefix, dayOfWeek))
	}
	start, startErr := domain.ParseClock(startTime)
	if startErr != nil {
		errs = append(errs, fmt.Errorf("%s.start_time: invalid clock time %q", prefix, startTime))
	}
	end, endErr := domain.ParseClock(endTime)
	if endErr != nil {
		errs = append(errs, fmt.Errorf("%s.end_time: invalid clock time %q", prefix, endTime))
	}
	if startErr == nil && endErr == nil && end <= start {
		errs = append(errs, fmt.Errorf("%s: end_time %q must be after start_time %q", prefix, endTime, startTime))
	}

	return errs
}
