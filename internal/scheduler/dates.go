package scheduler

import "github.com/dhlim/plancycle/internal/domain"

// defaultWeeklyDays is used when a strategy policy omits its weekly quota.
const defaultWeeklyDays = 3

// AllocateDates selects the study-day dates a content will occupy.
// Weakness subjects take every study day. Strategy subjects take WeeklyDays
// dates per cycle, spread evenly across each cycle's study-day block: for a
// block of n dates and quota k, the indices floor(j*n/k) for j in 0..k-1.
// That keeps picks apart (never the first k consecutive days) and always
// yields exactly min(k, n) dates per cycle.
func AllocateDates(cycleDays []domain.CycleDay, policy AllocationPolicy) []string {
	if policy.SubjectType != domain.SubjectStrategy {
		return StudyDates(cycleDays)
	}

	weeklyDays := policy.WeeklyDays
	if weeklyDays <= 0 {
		weeklyDays = defaultWeeklyDays
	}

	// Group study dates per cycle, preserving chronological order.
	var cycleOrder []int
	blocks := make(map[int][]string)
	for _, cd := range cycleDays {
		if cd.DayType != domain.DayStudy {
			continue
		}
		if _, seen := blocks[cd.CycleNumber]; !seen {
			cycleOrder = append(cycleOrder, cd.CycleNumber)
		}
		blocks[cd.CycleNumber] = append(blocks[cd.CycleNumber], cd.Date)
	}

	var allocated []string
	for _, cycle := range cycleOrder {
		block := blocks[cycle]
		n := len(block)
		k := weeklyDays
		if k > n {
			k = n
		}
		prev := -1
		for j := 0; j < k; j++ {
			idx := j * n / k
			if idx == prev {
				continue
			}
			allocated = append(allocated, block[idx])
			prev = idx
		}
	}

	return allocated
}
