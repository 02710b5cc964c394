package store

import "github.com/oakbridge/abc-dashboard/internal/models"

// Directory holds the static staff and student catalogs. Both lists are
// built once at process start and read-only afterwards, so lookups need no
// locking. Linear scans are deliberate: the catalogs are small and fixed.
type Directory struct {
	staff    []models.Staff
	students []models.Student
}

// NewDirectory builds a directory over the given catalogs.
func NewDirectory(staff []models.Staff, students []models.Student) *Directory {
	return &Directory{staff: staff, students: students}
}

// StaffByID returns the staff member with the given id, or nil when the id
// is unknown. Absence is a normal UI branch, never an error.
func (d *Directory) StaffByID(id string) *models.Staff {
	for i := range d.staff {
		if d.staff[i].ID == id {
			s := d.staff[i]
			return &s
		}
	}
	return nil
}

// StudentByID returns the student with the given id, or nil when unknown.
func (d *Directory) StudentByID(id string) *models.Student {
	for i := range d.students {
		if d.students[i].ID == id {
			s := d.students[i]
			return &s
		}
	}
	return nil
}

// StudentsForStaff returns the students whose primary staff assignment
// matches staffID. An unknown id yields an empty list.
func (d *Directory) StudentsForStaff(staffID string) []models.Student {
	matched := make([]models.Student, 0)
	for _, s := range d.students {
		if s.PrimaryStaffID == staffID {
			matched = append(matched, s)
		}
	}
	return matched
}

// Students returns a copy of the full student catalog.
func (d *Directory) Students() []models.Student {
	out := make([]models.Student, len(d.students))
	copy(out, d.students)
	return out
}

// Staff returns a copy of the full staff catalog.
func (d *Directory) Staff() []models.Staff {
	out := make([]models.Staff, len(d.staff))
	copy(out, d.staff)
	return out
}

// ActiveStaffNames lists the display names of active staff, in catalog
// order, for the landing-page profile dropdown.
func (d *Directory) ActiveStaffNames() []string {
	names := make([]string, 0, len(d.staff))
	for _, s := range d.staff {
		if s.Active {
			names = append(names, s.FullName)
		}
	}
	return names
}

// ActiveStaff lists active staff profiles in catalog order.
func (d *Directory) ActiveStaff() []models.Staff {
	active := make([]models.Staff, 0, len(d.staff))
	for _, s := range d.staff {
		if s.Active {
			active = append(active, s)
		}
	}
	return active
}
