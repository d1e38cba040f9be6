package scheduler

import (
	"fmt"
	"strings"

	"github.com/dhlim/plancycle/internal/domain"
)

// SubjectAllocation is a per-subject-category override of allocation policy.
type SubjectAllocation struct {
	SubjectID   string
	SubjectName string
	SubjectType domain.SubjectType
	WeeklyDays  *int
}

// ContentAllocation is a per-content override of allocation policy. It wins
// over any subject-level setting.
type ContentAllocation struct {
	ContentType domain.ContentType
	ContentID   string
	SubjectType domain.SubjectType
	WeeklyDays  *int
}

// AllocationSource records which override level produced a policy.
type AllocationSource string

const (
	SourceContent AllocationSource = "content"
	SourceSubject AllocationSource = "subject"
	SourceDefault AllocationSource = "default"
)

// AllocationPolicy is the resolved per-content policy. WeeklyDays is only
// meaningful for strategy subjects; zero means uncapped.
type AllocationPolicy struct {
	SubjectType domain.SubjectType
	WeeklyDays  int
	Source      AllocationSource
}

// ValidateAllocations shape-checks both override tables. Malformed rows
// yield diagnostics; they are skipped during resolution, never fatal.
func ValidateAllocations(contentAllocs []ContentAllocation, subjectAllocs []SubjectAllocation) []FailureReason {
	var diags []FailureReason

	for i, a := range contentAllocs {
		if a.ContentID == "" {
			diags = append(diags, newMalformedAllocation(fmt.Sprintf("content_allocations[%d]: missing content_id", i)))
			continue
		}
		if a.SubjectType != domain.SubjectStrategy && a.SubjectType != domain.SubjectWeakness {
			diags = append(diags, newMalformedAllocation(fmt.Sprintf("content_allocations[%d]: invalid subject_type %q", i, a.SubjectType)))
			continue
		}
		if a.WeeklyDays != nil && *a.WeeklyDays <= 0 {
			diags = append(diags, newMalformedAllocation(fmt.Sprintf("content_allocations[%d]: weekly_days must be positive, got %d", i, *a.WeeklyDays)))
		}
	}

	for i, a := range subjectAllocs {
		if a.SubjectName == "" {
			diags = append(diags, newMalformedAllocation(fmt.Sprintf("subject_allocations[%d]: missing subject_name", i)))
			continue
		}
		if a.SubjectType != domain.SubjectStrategy && a.SubjectType != domain.SubjectWeakness {
			diags = append(diags, newMalformedAllocation(fmt.Sprintf("subject_allocations[%d]: invalid subject_type %q", i, a.SubjectType)))
			continue
		}
		if a.WeeklyDays != nil && *a.WeeklyDays <= 0 {
			diags = append(diags, newMalformedAllocation(fmt.Sprintf("subject_allocations[%d]: weekly_days must be positive, got %d", i, *a.WeeklyDays)))
		}
	}

	return diags
}

// EffectiveAllocation resolves the allocation policy for one content item.
// Lookup order: content-level override, subject-category override
// (case-normalized, exact match before substring match), default weakness.
// Malformed rows are ignored.
func EffectiveAllocation(c *domain.ContentItem, contentAllocs []ContentAllocation, subjectAllocs []SubjectAllocation) AllocationPolicy {
	for _, a := range contentAllocs {
		if !validAllocationRow(a.ContentID != "", a.SubjectType, a.WeeklyDays) {
			continue
		}
		if a.ContentType == c.ContentType && a.ContentID == c.ContentID {
			return AllocationPolicy{
				SubjectType: a.SubjectType,
				WeeklyDays:  domain.IntFromPtrWithDefault(0, a.WeeklyDays),
				Source:      SourceContent,
			}
		}
	}

	category := domain.NormalizeSubject(c.SubjectCategory)
	if category != "" {
		// Exact match on the normalized name wins over a substring match
		// ("math" matches "math" before "math i").
		var partial *SubjectAllocation
		for i, a := range subjectAllocs {
			if !validAllocationRow(a.SubjectName != "", a.SubjectType, a.WeeklyDays) {
				continue
			}
			name := domain.NormalizeSubject(a.SubjectName)
			if name == category {
				return AllocationPolicy{
					SubjectType: a.SubjectType,
					WeeklyDays:  domain.IntFromPtrWithDefault(0, a.WeeklyDays),
					Source:      SourceSubject,
				}
			}
			if partial == nil && strings.Contains(name, category) {
				partial = &subjectAllocs[i]
			}
		}
		if partial != nil {
			return AllocationPolicy{
				SubjectType: partial.SubjectType,
				WeeklyDays:  domain.IntFromPtrWithDefault(0, partial.WeeklyDays),
				Source:      SourceSubject,
			}
		}
	}

	return AllocationPolicy{SubjectType: domain.SubjectWeakness, Source: SourceDefault}
}

func validAllocationRow(hasKey bool, subjectType domain.SubjectType, weeklyDays *int) bool {
	if !hasKey {
		return false
	}
	if subjectType != domain.SubjectStrategy && subjectType != domain.SubjectWeakness {
		return false
	}
	if weeklyDays != nil && *weeklyDays <= 0 {
		return false
	}
	return true
}
