package dto

import "github.com/oakbridge/abc-dashboard/internal/models"

// SelectProfileRequest is the mock-login payload: the caller picks a staff
// profile from the landing dropdown. There is no credential check by
// design; any real deployment needs a genuine authentication boundary in
// front of this.
type SelectProfileRequest struct {
	StaffID string `json:"staff_id" binding:"required"`
}

// NavigateRequest asks the router to move the session to a target page,
// overwriting only the supplied fields.
type NavigateRequest struct {
	Page      models.Page          `json:"page" binding:"required"`
	StudentID *string              `json:"student_id,omitempty"`
	SubPage   *models.StaffSubPage `json:"staff_sub_page,omitempty"`
}

// SessionView is the session state plus the resolved view, returned after
// every navigation so the presentation layer knows what to render.
type SessionView struct {
	SessionID  string              `json:"session_id"`
	Page       models.Page         `json:"page"`
	Role       models.StaffRole    `json:"role,omitempty"`
	StaffID    string              `json:"staff_id,omitempty"`
	StudentID  string              `json:"student_id,omitempty"`
	SubPage    models.StaffSubPage `json:"staff_sub_page,omitempty"`
	View       models.ViewID       `json:"view"`
	Redirected bool                `json:"redirected"`
	Notice     string              `json:"notice,omitempty"`
}
