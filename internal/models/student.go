package models

// Student represents a learner on the behaviour-support caseload.
// Students are loaded once at process start and never mutated.
type Student struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	Grade          string `json:"grade"`
	PrimaryStaffID string `json:"primary_staff_id"`
	SupportPlan    string `json:"support_plan"`
}
