package models

import "time"

// TopBehaviourEmpty is reported when no behaviour tokens exist in the
// filtered subset.
const TopBehaviourEmpty = "N/A"

// IncidentSummary holds the headline metrics for a filtered record set.
type IncidentSummary struct {
	Count         int     `json:"count"`
	MeanIntensity float64 `json:"mean_intensity"`
	TopBehaviour  string  `json:"top_behaviour"`
}

// TrendPoint is one (date, count) entry of an ascending daily trend.
type TrendPoint struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

// BreakdownEntry is one category count of a descending frequency breakdown.
type BreakdownEntry struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}
