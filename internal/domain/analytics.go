package domain

// Analytics is the aggregation payload served by the analytics endpoint.
// It is always computed over at least one response — an empty filtered set
// is reported as ErrNotFound, never as a zeroed payload.
type Analytics struct {
	// TotalResponses is the number of responses in the filtered set.
	TotalResponses int `json:"totalResponses"`

	// LookingPercentage is the share of responses with currently_looking =
	// "yes", as a percentage rounded to one decimal place.
	LookingPercentage float64 `json:"lookingPercentage"`

	// Distribution maps: field value → occurrence count. Only MaxBudgets
	// excludes skipped answers; SearchMethods counts them under "".
	UserTypes         map[string]int `json:"userTypes"`
	AgeGroups         map[string]int `json:"ageGroups"`
	MaxBudgets        map[string]int `json:"maxBudgets"`
	BiggestChallenges map[string]int `json:"biggestChallenges"`
	SearchMethods     map[string]int `json:"searchMethods"`

	// Flattened tag counts: every element of every response's list
	// contributes one count to its label.
	PriorityCounts map[string]int `json:"priorityCounts"`
	FeatureCounts  map[string]int `json:"featureCounts"`

	// Top-5 rankings, count descending with ties broken by label ascending.
	TopPriorities []PriorityCount  `json:"topPriorities"`
	TopChallenges []ChallengeCount `json:"topChallenges"`
}

// PriorityCount is one entry of the topPriorities ranking.
type PriorityCount struct {
	Priority string `json:"priority"`
	Count    int    `json:"count"`
}

// ChallengeCount is one entry of the topChallenges ranking.
type ChallengeCount struct {
	Challenge string `json:"challenge"`
	Count     int    `json:"count"`
}
