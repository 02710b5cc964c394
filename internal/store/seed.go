package store

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/oakbridge/abc-dashboard/internal/models"
)

// SeedStaff returns the fixed staff catalog used for the profile dropdown.
func SeedStaff() []models.Staff {
	return []models.Staff{
		{ID: "stf-admin", FullName: "Dana Whitfield", Role: models.RoleAdministrator, Active: true, Email: "d.whitfield@oakbridge.edu"},
		{ID: "stf-jp", FullName: "Marcus Okafor", Role: models.RoleJuniorPrimary, Active: true, Email: "m.okafor@oakbridge.edu"},
		{ID: "stf-py", FullName: "Priya Raman", Role: models.RolePrimaryYear, Active: true, Email: "p.raman@oakbridge.edu"},
		{ID: "stf-sy", FullName: "Ellen Vance", Role: models.RoleSecondaryYear, Active: true, Email: "e.vance@oakbridge.edu"},
		{ID: "stf-former", FullName: "Rob Tennant", Role: models.RolePrimaryYear, Active: false, Email: "r.tennant@oakbridge.edu"},
	}
}

// SeedStudents returns the fixed student catalog. Each student is assigned
// to exactly one primary staff member.
func SeedStudents() []models.Student {
	return []models.Student{
		{ID: "stu-001", FullName: "Ari Bennett", Grade: "1", PrimaryStaffID: "stf-jp", SupportPlan: "Visual schedule; warning before transitions."},
		{ID: "stu-002", FullName: "Noa Castellanos", Grade: "2", PrimaryStaffID: "stf-jp", SupportPlan: "Sensory breaks every 40 minutes."},
		{ID: "stu-003", FullName: "Felix Duarte", Grade: "4", PrimaryStaffID: "stf-py", SupportPlan: "Check-in on arrival; preferred seating near door."},
		{ID: "stu-004", FullName: "Mia Holloway", Grade: "5", PrimaryStaffID: "stf-py", SupportPlan: "Break card system; restorative chat after incidents."},
		{ID: "stu-005", FullName: "Theo Ivanov", Grade: "8", PrimaryStaffID: "stf-sy", SupportPlan: "Reduced workload during assessment weeks."},
		{ID: "stu-006", FullName: "Zara Keeling", Grade: "9", PrimaryStaffID: "stf-sy", SupportPlan: "Exit pass for overwhelm; mentor session Fridays."},
	}
}

// Seeder generates schema-conformant synthetic incident rows. A non-zero
// random seed makes the output reproducible across restarts.
type Seeder struct {
	rng *rand.Rand
}

// NewSeeder constructs a seeder. Seed 0 selects a time-based source.
func NewSeeder(seed int64) *Seeder {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Seeder{rng: rand.New(rand.NewSource(seed))}
}

// Populate appends count synthetic rows to the incident table, drawing
// students and recording staff from the directory and all category values
// from the fixed enumerations. Dates are spread over the trailing 120 days
// so default 90-day analytics windows always have data on either side.
func (s *Seeder) Populate(log *IncidentLog, dir *Directory, count int, now time.Time) error {
	students := dir.Students()
	staff := dir.ActiveStaff()
	if len(students) == 0 || len(staff) == 0 {
		return fmt.Errorf("seed requires non-empty staff and student catalogs")
	}

	today := now.UTC().Truncate(24 * time.Hour)
	contexts := []string{
		"During group work",
		"Immediately after recess",
		"Start of the school day",
		"During independent reading",
		"Waiting in line",
	}

	for i := 0; i < count; i++ {
		student := students[s.rng.Intn(len(students))]
		recorder := staff[s.rng.Intn(len(staff))]

		behaviours := s.pickBehaviours()
		record := models.IncidentRecord{
			ID:          uuid.NewString(),
			Date:        today.AddDate(0, 0, -s.rng.Intn(120)),
			Time:        fmt.Sprintf("%02d:%02d", 8+s.rng.Intn(7), s.rng.Intn(60)),
			StudentID:   student.ID,
			Antecedent:  models.Antecedents[s.rng.Intn(len(models.Antecedents))],
			Behaviours:  behaviours,
			Intensity:   1 + s.rng.Intn(5),
			Consequence: models.Consequences[s.rng.Intn(len(models.Consequences))],
			Location:    models.Locations[s.rng.Intn(len(models.Locations))],
			Context:     contexts[s.rng.Intn(len(contexts))],
			Description: fmt.Sprintf("Seeded observation of %s.", behaviours[0]),
			RecordedBy:  recorder.ID,
		}
		if err := log.Append(record); err != nil {
			return fmt.Errorf("seed incident %d: %w", i, err)
		}
	}
	return nil
}

// pickBehaviours selects one or two distinct behaviour categories,
// preserving catalog order within a record.
func (s *Seeder) pickBehaviours() []string {
	first := s.rng.Intn(len(models.Behaviours))
	if s.rng.Intn(3) != 0 {
		return []string{models.Behaviours[first]}
	}
	second := s.rng.Intn(len(models.Behaviours))
	if second == first {
		second = (second + 1) % len(models.Behaviours)
	}
	lo, hi := first, second
	if lo > hi {
		lo, hi = hi, lo
	}
	return []string{models.Behaviours[lo], models.Behaviours[hi]}
}
