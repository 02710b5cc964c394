package service

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/oakbridge/abc-dashboard/internal/models"
	"github.com/oakbridge/abc-dashboard/internal/store"
	appErrors "github.com/oakbridge/abc-dashboard/pkg/errors"
)

// AnalyticsService derives descriptive metrics from the incident table,
// scoped by student and a trailing recency window.
type AnalyticsService struct {
	log        *store.IncidentLog
	metrics    *MetricsService
	logger     *zap.Logger
	windowDays int
	now        func() time.Time
}

// NewAnalyticsService constructs the engine. defaultWindowDays <= 0 falls
// back to 90.
func NewAnalyticsService(log *store.IncidentLog, metrics *MetricsService, logger *zap.Logger, defaultWindowDays int) *AnalyticsService {
	if defaultWindowDays <= 0 {
		defaultWindowDays = 90
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsService{
		log:        log,
		metrics:    metrics,
		logger:     logger,
		windowDays: defaultWindowDays,
		now:        time.Now,
	}
}

// DefaultWindowDays exposes the configured recency window.
func (s *AnalyticsService) DefaultWindowDays() int {
	return s.windowDays
}

// FilterRecent returns the records matching the student (when set) with a
// date on or after today minus the window. WindowDays <= 0 uses the
// configured default. Insertion order is preserved.
func (s *AnalyticsService) FilterRecent(filter models.IncidentFilter) []models.IncidentRecord {
	window := filter.WindowDays
	if window <= 0 {
		window = s.windowDays
	}
	cutoff := s.now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -window)

	start := time.Now()
	all := s.log.All()
	matched := make([]models.IncidentRecord, 0, len(all))
	for _, r := range all {
		if filter.StudentID != "" && r.StudentID != filter.StudentID {
			continue
		}
		if r.Date.Before(cutoff) {
			continue
		}
		matched = append(matched, r)
	}
	if s.metrics != nil {
		s.metrics.ObserveAnalyticsQuery("filter_recent", time.Since(start))
	}
	return matched
}

// SummaryMetrics computes the headline numbers for a record set. An empty
// set yields count 0, mean 0 and the empty top-behaviour token, never an
// error.
func (s *AnalyticsService) SummaryMetrics(records []models.IncidentRecord) models.IncidentSummary {
	summary := models.IncidentSummary{TopBehaviour: models.TopBehaviourEmpty}
	if len(records) == 0 {
		return summary
	}

	total := 0
	for _, r := range records {
		total += r.Intensity
	}
	summary.Count = len(records)
	summary.MeanIntensity = float64(total) / float64(len(records))

	behaviours := s.FrequencyBreakdown(records, models.FieldBehaviour)
	if len(behaviours) > 0 {
		summary.TopBehaviour = behaviours[0].Value
	}
	return summary
}

// TrendByDate counts records per distinct date, ascending by date.
func (s *AnalyticsService) TrendByDate(records []models.IncidentRecord) []models.TrendPoint {
	counts := make(map[time.Time]int)
	for _, r := range records {
		day := r.Date.Truncate(24 * time.Hour)
		counts[day]++
	}

	points := make([]models.TrendPoint, 0, len(counts))
	for day, n := range counts {
		points = append(points, models.TrendPoint{Date: day, Count: n})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points
}

// FrequencyBreakdown counts category occurrences for the named field,
// descending by count. The behaviour field is exploded first: a record
// logged as "A, B" contributes one count to A and one to B. Ties keep
// first-encountered order (the sort is stable over encounter order).
func (s *AnalyticsService) FrequencyBreakdown(records []models.IncidentRecord, field string) []models.BreakdownEntry {
	counts := make(map[string]int)
	var order []string

	bump := func(value string) {
		if value == "" {
			return
		}
		if _, seen := counts[value]; !seen {
			order = append(order, value)
		}
		counts[value]++
	}

	for _, r := range records {
		switch field {
		case models.FieldBehaviour:
			for _, b := range r.Behaviours {
				bump(b)
			}
		case models.FieldAntecedent:
			bump(r.Antecedent)
		case models.FieldConsequence:
			bump(r.Consequence)
		case models.FieldLocation:
			bump(r.Location)
		}
	}

	entries := make([]models.BreakdownEntry, 0, len(order))
	for _, value := range order {
		entries = append(entries, models.BreakdownEntry{Value: value, Count: counts[value]})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Count > entries[j].Count })
	return entries
}

// TopN truncates a descending breakdown to its first n entries. A
// non-positive n means no limit: callers pass it when the caller asked for
// the whole breakdown, not an empty one.
func (s *AnalyticsService) TopN(breakdown []models.BreakdownEntry, n int) []models.BreakdownEntry {
	if n <= 0 || n >= len(breakdown) {
		return breakdown
	}
	return breakdown[:n]
}

// ValidBreakdownField normalises a requested breakdown field, rejecting
// anything outside the fixed incident categories.
func ValidBreakdownField(field string) (string, error) {
	switch field {
	case models.FieldBehaviour, models.FieldAntecedent, models.FieldConsequence, models.FieldLocation:
		return field, nil
	default:
		return "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown breakdown field %q", field))
	}
}
