package session

import (
	"github.com/oakbridge/abc-dashboard/internal/models"
	appErrors "github.com/oakbridge/abc-dashboard/pkg/errors"
)

// Resolution is the outcome of entering the session's current page: the
// logical view to render, whether a guard redirected the session, and the
// user-visible notice explaining why.
type Resolution struct {
	View       models.ViewID `json:"view"`
	Redirected bool          `json:"redirected"`
	Notice     string        `json:"notice,omitempty"`
}

// Router applies the view-entry guards and maps session state to a logical
// view. It is a flat state machine: four pages, no history stack, one
// shared fallback target (the staff area).
type Router struct{}

// NewRouter constructs a Router.
func NewRouter() *Router {
	return &Router{}
}

// Resolve enforces the entry guards for the session's current page,
// redirecting the session in place when context is missing, then returns
// the view for the resulting state. A fired guard surfaces as a notice on
// the resolution, never as a failure. The session stays locked for the
// whole resolution so concurrent navigations cannot interleave with it.
func (r *Router) Resolve(s *Session) Resolution {
	s.mu.Lock()
	defer s.mu.Unlock()
	return r.resolve(s)
}

func (r *Router) resolve(s *Session) Resolution {
	switch s.Page {
	case models.PageQuickLog, models.PageStudentDetail:
		if !s.hasRole() || !s.hasStudent() {
			// Fall back to the staff area and resolve again, so its own
			// role guard still applies to the redirected session.
			s.Page = models.PageStaffArea
			res := r.resolve(s)
			res.Redirected = true
			res.Notice = appErrors.ErrNavigationContext.Message + ": select a profile and a student first"
			return res
		}
	case models.PageStaffArea:
		if !s.hasRole() {
			s.Page = models.PageLanding
			return Resolution{
				View:       models.ViewLanding,
				Redirected: true,
				Notice:     "select a staff profile to continue",
			}
		}
	}

	switch s.Page {
	case models.PageQuickLog:
		return Resolution{View: models.ViewQuickLogForm}
	case models.PageStudentDetail:
		return Resolution{View: models.ViewStudentOverview}
	case models.PageStaffArea:
		return r.resolveStaffArea(s)
	default:
		return Resolution{View: models.ViewLanding}
	}
}

// resolveStaffArea maps the staff-area tab to its view. Administrators
// land on the school-wide aggregate; everyone else lands on their own
// caseload. Non-administrators asking for the all-students tab are scoped
// back to their own students: the scoping filters what is shown, it is not
// a security boundary.
func (r *Router) resolveStaffArea(s *Session) Resolution {
	switch s.SubPage {
	case models.SubPageMyStudents:
		return Resolution{View: models.ViewMyStudents}
	case models.SubPageAllStudents:
		if s.Role != models.RoleAdministrator {
			return Resolution{View: models.ViewMyStudents}
		}
		return Resolution{View: models.ViewAllStudents}
	case models.SubPageReports:
		return Resolution{View: models.ViewReports}
	case models.SubPageSettings:
		return Resolution{View: models.ViewSettings}
	default:
		if s.Role == models.RoleAdministrator {
			return Resolution{View: models.ViewSchoolWide}
		}
		return Resolution{View: models.ViewMyStudents}
	}
}
