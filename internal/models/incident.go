package models

import (
	"strings"
	"time"
)

// BehaviourSeparator joins the ordered behaviour list into the single
// field used on the wire and in exports.
const BehaviourSeparator = ", "

// IncidentRecord is one Antecedent-Behaviour-Consequence log entry, the
// atomic unit of behavioural data collection.
type IncidentRecord struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	StudentID   string    `json:"student_id"`
	Antecedent  string    `json:"antecedent"`
	Behaviours  []string  `json:"behaviours"`
	Intensity   int       `json:"intensity"`
	Consequence string    `json:"consequence"`
	Location    string    `json:"location"`
	Context     string    `json:"context"`
	Description string    `json:"description"`
	RecordedBy  string    `json:"recorded_by"`
}

// BehaviourField renders the multi-value behaviour list as the joined
// single-field representation.
func (r IncidentRecord) BehaviourField() string {
	return strings.Join(r.Behaviours, BehaviourSeparator)
}

// SplitBehaviourField explodes a joined behaviour field back into its
// constituent tokens, dropping empty entries.
func SplitBehaviourField(field string) []string {
	parts := strings.Split(field, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// IncidentFilter scopes incident listings and analytics queries.
// A zero StudentID means school-wide; WindowDays <= 0 falls back to the
// configured default recency window.
type IncidentFilter struct {
	StudentID  string
	WindowDays int
}

// Incident field names accepted by frequency breakdowns.
const (
	FieldAntecedent  = "antecedent"
	FieldBehaviour   = "behaviour"
	FieldConsequence = "consequence"
	FieldLocation    = "location"
)
