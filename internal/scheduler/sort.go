package scheduler

import (
	"sort"

	"github.com/dhlim/plancycle/internal/domain"
)

// orderContents fixes the deterministic packing priority: strategy-allocated
// contents first, then higher risk scores, then content id for ties.
func orderContents(contents []*domain.ContentItem, policies map[string]AllocationPolicy, risks map[string]domain.RiskIndex) []*domain.ContentItem {
	ordered := append([]*domain.ContentItem(nil), contents...)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		aStrategy := policies[a.ContentID].SubjectType == domain.SubjectStrategy
		bStrategy := policies[b.ContentID].SubjectType == domain.SubjectStrategy
		if aStrategy != bStrategy {
			return aStrategy
		}
		aRisk := risks[a.SubjectKey()].RiskScore
		bRisk := risks[b.SubjectKey()].RiskScore
		if aRisk != bRisk {
			return aRisk > bRisk
		}
		return a.ContentID < b.ContentID
	})
	return ordered
}
