package scheduler

import (
	"math"
	"sort"
)

// Range is a half-open [Start, End) sub-range of a content's total amount.
type Range struct {
	Start int
	End   int
}

// Amount is the number of units the range covers.
func (r Range) Amount() int {
	return r.End - r.Start
}

// DivideRange splits totalAmount units across the allocated dates. Every
// date except the last receives round(totalAmount/n) units; the last date
// absorbs the rounding remainder so the per-date amounts always sum to
// exactly totalAmount. Returned ranges are relative to 0..totalAmount; the
// caller adds the content's start offset. Dates whose share rounds to zero
// are omitted.
func DivideRange(totalAmount int, allocatedDates []string) map[string]Range {
	result := make(map[string]Range)
	if len(allocatedDates) == 0 || totalAmount <= 0 {
		return result
	}

	dates := append([]string(nil), allocatedDates...)
	sort.Strings(dates)

	daily := int(math.Round(float64(totalAmount) / float64(len(dates))))
	current := 0

	for i, date := range dates {
		isLast := i == len(dates)-1

		dayEnd := current + daily
		if isLast || dayEnd > totalAmount {
			dayEnd = totalAmount
		}

		if dayEnd > current {
			result[date] = Range{Start: current, End: dayEnd}
		}
		current = dayEnd

		if current >= totalAmount {
			break
		}
	}

	return result
}
