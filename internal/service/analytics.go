package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/witrent/survey-api/internal/domain"
	"github.com/witrent/survey-api/internal/repo"
)

// topN is the ranking depth for topPriorities and topChallenges.
const topN = 5

// AnalyticsService computes dashboard aggregations over the filtered
// response set. All counting and grouping happens in process — the repo only
// supplies rows. The service holds no state between calls.
type AnalyticsService struct {
	repo repo.ResponseRepo
}

// NewAnalyticsService constructs an AnalyticsService backed by the provided repo.
func NewAnalyticsService(r repo.ResponseRepo) *AnalyticsService {
	return &AnalyticsService{repo: r}
}

// Overview aggregates every response matching the filter.
// Returns domain.ErrNotFound when no responses match — an empty set is an
// explicit no-data condition, not an all-zero payload.
func (s *AnalyticsService) Overview(ctx context.Context, filter domain.ResponseFilter) (domain.Analytics, error) {
	responses, err := s.repo.ListAll(ctx, filter)
	if err != nil {
		return domain.Analytics{}, fmt.Errorf("service.AnalyticsService.Overview: %w", err)
	}
	if len(responses) == 0 {
		return domain.Analytics{}, fmt.Errorf("service.AnalyticsService.Overview: no data: %w", domain.ErrNotFound)
	}
	return aggregate(responses), nil
}

// aggregate computes the full analytics payload over a non-empty response set.
func aggregate(responses []domain.Response) domain.Analytics {
	a := domain.Analytics{
		TotalResponses:    len(responses),
		UserTypes:         map[string]int{},
		AgeGroups:         map[string]int{},
		MaxBudgets:        map[string]int{},
		BiggestChallenges: map[string]int{},
		SearchMethods:     map[string]int{},
		PriorityCounts:    map[string]int{},
		FeatureCounts:     map[string]int{},
	}

	looking := 0
	for _, r := range responses {
		if r.CurrentlyLooking == domain.LookingYes {
			looking++
		}
		a.UserTypes[r.UserType]++
		a.AgeGroups[r.AgeGroup]++
		if r.MaxBudget != "" {
			a.MaxBudgets[r.MaxBudget]++
		}
		a.BiggestChallenges[r.BiggestChallenge]++
		a.SearchMethods[r.SearchMethod]++
		for _, p := range r.Priorities {
			a.PriorityCounts[p]++
		}
		for _, f := range r.DesiredFeatures {
			a.FeatureCounts[f]++
		}
	}

	a.LookingPercentage = round1(100 * float64(looking) / float64(len(responses)))

	for _, entry := range topEntries(a.PriorityCounts, topN) {
		a.TopPriorities = append(a.TopPriorities, domain.PriorityCount{
			Priority: entry.label,
			Count:    entry.count,
		})
	}
	for _, entry := range topEntries(a.BiggestChallenges, topN) {
		a.TopChallenges = append(a.TopChallenges, domain.ChallengeCount{
			Challenge: entry.label,
			Count:     entry.count,
		})
	}

	return a
}

// labelCount is one distribution entry during ranking.
type labelCount struct {
	label string
	count int
}

// topEntries returns the n highest-count entries of a distribution, count
// descending with ties broken by label ascending so the ranking is
// deterministic regardless of map iteration order.
func topEntries(dist map[string]int, n int) []labelCount {
	entries := make([]labelCount, 0, len(dist))
	for label, count := range dist {
		entries = append(entries, labelCount{label: label, count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].label < entries[j].label
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
