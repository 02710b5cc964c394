package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakbridge/abc-dashboard/internal/models"
	"github.com/oakbridge/abc-dashboard/internal/store"
	appErrors "github.com/oakbridge/abc-dashboard/pkg/errors"
)

func newDirectoryFixture() *DirectoryService {
	staff := []models.Staff{
		{ID: "stf-admin", FullName: "Dana", Role: models.RoleAdministrator, Active: true},
		{ID: "stf-py", FullName: "Priya", Role: models.RolePrimaryYear, Active: true},
	}
	students := []models.Student{
		{ID: "stu1", FullName: "Felix", PrimaryStaffID: "stf-py"},
		{ID: "stu2", FullName: "Theo", PrimaryStaffID: "stf-other"},
		{ID: "stu3", FullName: "Zara", PrimaryStaffID: "stf-other"},
	}
	return NewDirectoryService(store.NewDirectory(staff, students))
}

func TestVisibleStudentsScopesNonAdministrators(t *testing.T) {
	svc := newDirectoryFixture()

	visible := svc.VisibleStudents(models.RolePrimaryYear, "stf-py")
	require.Len(t, visible, 1)
	assert.Equal(t, "stu1", visible[0].ID)
}

func TestVisibleStudentsAdministratorSeesAll(t *testing.T) {
	svc := newDirectoryFixture()

	visible := svc.VisibleStudents(models.RoleAdministrator, "stf-admin")
	assert.Len(t, visible, 3)
}

func TestLookupsReturnTypedNotFound(t *testing.T) {
	svc := newDirectoryFixture()

	_, err := svc.StaffByID("ghost")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))

	_, err = svc.StudentByID("ghost")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))

	staff, err := svc.StaffByID("stf-py")
	require.NoError(t, err)
	assert.Equal(t, "Priya", staff.FullName)
}
