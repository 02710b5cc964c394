package session

import (
	"sync"

	"github.com/oakbridge/abc-dashboard/internal/models"
)

// Session is the per-client navigation context. The manager hands the same
// pointer to every request bearing one session id, so all field access goes
// through the mutex; concurrent navigations serialise rather than interleave.
type Session struct {
	mu sync.Mutex

	ID        string
	Page      models.Page
	Role      models.StaffRole
	StaffID   string
	StudentID string
	SubPage   models.StaffSubPage
}

// New returns the initial session state: the landing page with no role,
// student or sub-page selected.
func New(id string) *Session {
	return &Session{ID: id, Page: models.PageLanding}
}

// Field is a navigation option that overwrites one session field.
type Field func(*Session)

// WithRole sets the active role and the staff id it belongs to.
func WithRole(role models.StaffRole, staffID string) Field {
	return func(s *Session) {
		s.Role = role
		s.StaffID = staffID
	}
}

// WithStudent sets the active student.
func WithStudent(studentID string) Field {
	return func(s *Session) { s.StudentID = studentID }
}

// WithSubPage sets the staff-area tab.
func WithSubPage(sp models.StaffSubPage) Field {
	return func(s *Session) { s.SubPage = sp }
}

// Navigate overwrites the current page and any supplied fields, leaving
// everything else unchanged. Guards are applied later, at view entry, not
// here.
func (s *Session) Navigate(target models.Page, fields ...Field) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Page = target
	for _, f := range fields {
		f(s)
	}
}

// HasRole reports whether a staff profile has been selected.
func (s *Session) HasRole() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasRole()
}

// HasStudent reports whether an active student has been selected.
func (s *Session) HasStudent() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasStudent()
}

func (s *Session) hasRole() bool {
	return s.Role != "" && s.StaffID != ""
}

func (s *Session) hasStudent() bool {
	return s.StudentID != ""
}

// Snapshot is a point-in-time copy of the session's fields, safe to read
// after the lock is released.
type Snapshot struct {
	ID        string              `json:"id"`
	Page      models.Page         `json:"page"`
	Role      models.StaffRole    `json:"role,omitempty"`
	StaffID   string              `json:"staff_id,omitempty"`
	StudentID string              `json:"student_id,omitempty"`
	SubPage   models.StaffSubPage `json:"staff_sub_page,omitempty"`
}

// Snapshot returns a consistent copy of the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		ID:        s.ID,
		Page:      s.Page,
		Role:      s.Role,
		StaffID:   s.StaffID,
		StudentID: s.StudentID,
		SubPage:   s.SubPage,
	}
}

// HasRole reports whether the snapshot carries a selected staff profile.
func (s Snapshot) HasRole() bool {
	return s.Role != "" && s.StaffID != ""
}
