package models

// StaffRole identifies the staffing band a profile belongs to.
type StaffRole string

const (
	RoleAdministrator StaffRole = "Administrator"
	RoleJuniorPrimary StaffRole = "Junior-Primary"
	RolePrimaryYear   StaffRole = "Primary-Year"
	RoleSecondaryYear StaffRole = "Secondary-Year"
)

// ValidRole reports whether the value is one of the known staff roles.
func ValidRole(role StaffRole) bool {
	switch role {
	case RoleAdministrator, RoleJuniorPrimary, RolePrimaryYear, RoleSecondaryYear:
		return true
	default:
		return false
	}
}

// Staff represents a behaviour-support staff member. Staff records are
// loaded once at process start and never mutated.
type Staff struct {
	ID       string    `json:"id"`
	FullName string    `json:"full_name"`
	Role     StaffRole `json:"role"`
	Active   bool      `json:"active"`
	Email    string    `json:"email"`
}
