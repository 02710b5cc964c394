package service

import (
	"fmt"

	"github.com/oakbridge/abc-dashboard/internal/models"
	"github.com/oakbridge/abc-dashboard/internal/store"
	appErrors "github.com/oakbridge/abc-dashboard/pkg/errors"
)

// DirectoryService fronts the static staff/student catalogs. The store
// returns nil sentinels for unknown ids; this layer converts them to typed
// not-found errors at the API boundary and applies role-based visibility.
type DirectoryService struct {
	directory *store.Directory
}

// NewDirectoryService constructs the service.
func NewDirectoryService(directory *store.Directory) *DirectoryService {
	return &DirectoryService{directory: directory}
}

// ActiveStaff returns the selectable staff profiles for the landing page.
func (s *DirectoryService) ActiveStaff() []models.Staff {
	return s.directory.ActiveStaff()
}

// StaffByID resolves a staff profile.
func (s *DirectoryService) StaffByID(id string) (*models.Staff, error) {
	staff := s.directory.StaffByID(id)
	if staff == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("staff %q not found", id))
	}
	return staff, nil
}

// StudentByID resolves a student.
func (s *DirectoryService) StudentByID(id string) (*models.Student, error) {
	student := s.directory.StudentByID(id)
	if student == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("student %q not found", id))
	}
	return student, nil
}

// VisibleStudents applies role scoping: administrators see the whole
// catalog, everyone else only the students on their own caseload. This
// filters what is shown; it is not an authorization check.
func (s *DirectoryService) VisibleStudents(role models.StaffRole, staffID string) []models.Student {
	if role == models.RoleAdministrator {
		return s.directory.Students()
	}
	return s.directory.StudentsForStaff(staffID)
}
