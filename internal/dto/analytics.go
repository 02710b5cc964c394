package dto

import "github.com/oakbridge/abc-dashboard/internal/models"

// SummaryResponse wraps the headline metrics with the window they cover.
type SummaryResponse struct {
	StudentID  string                 `json:"student_id,omitempty"`
	WindowDays int                    `json:"window_days"`
	Summary    models.IncidentSummary `json:"summary"`
}

// TrendResponse is the daily incident count series.
type TrendResponse struct {
	StudentID  string              `json:"student_id,omitempty"`
	WindowDays int                 `json:"window_days"`
	Points     []models.TrendPoint `json:"points"`
}

// BreakdownResponse is a descending category frequency breakdown.
type BreakdownResponse struct {
	StudentID  string                  `json:"student_id,omitempty"`
	WindowDays int                     `json:"window_days"`
	Field      string                  `json:"field"`
	Entries    []models.BreakdownEntry `json:"entries"`
}

// StudentOverview composes the student-detail page payload: identity,
// support plan and recent analytics in one round trip.
type StudentOverview struct {
	Student   models.Student          `json:"student"`
	Summary   models.IncidentSummary  `json:"summary"`
	Trend     []models.TrendPoint     `json:"trend"`
	Behaviour []models.BreakdownEntry `json:"behaviour_breakdown"`
	Recent    []models.IncidentRecord `json:"recent_incidents"`
}
