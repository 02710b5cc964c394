package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakbridge/abc-dashboard/internal/models"
)

func TestSeederPopulatesConformantRows(t *testing.T) {
	dir := NewDirectory(SeedStaff(), SeedStudents())
	log := NewIncidentLog()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	require.NoError(t, NewSeeder(42).Populate(log, dir, 100, now))
	require.Equal(t, 100, log.Len())

	today := now.Truncate(24 * time.Hour)
	for _, r := range log.All() {
		assert.NotEmpty(t, r.ID)
		assert.NotNil(t, dir.StudentByID(r.StudentID), "student %s must exist", r.StudentID)
		assert.NotNil(t, dir.StaffByID(r.RecordedBy), "staff %s must exist", r.RecordedBy)
		assert.GreaterOrEqual(t, r.Intensity, 1)
		assert.LessOrEqual(t, r.Intensity, 5)
		assert.NotEmpty(t, r.Behaviours)
		assert.NotEmpty(t, r.Description)
		assert.True(t, models.InCatalog(models.Antecedents, r.Antecedent))
		assert.True(t, models.InCatalog(models.Consequences, r.Consequence))
		assert.True(t, models.InCatalog(models.Locations, r.Location))
		for _, b := range r.Behaviours {
			assert.True(t, models.InCatalog(models.Behaviours, b))
		}
		assert.False(t, r.Date.After(today))
		assert.False(t, r.Date.Before(today.AddDate(0, 0, -120)))
	}
}

func TestSeederIsReproducibleForFixedSeed(t *testing.T) {
	dir := NewDirectory(SeedStaff(), SeedStudents())
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	first := NewIncidentLog()
	require.NoError(t, NewSeeder(7).Populate(first, dir, 20, now))
	second := NewIncidentLog()
	require.NoError(t, NewSeeder(7).Populate(second, dir, 20, now))

	a, b := first.All(), second.All()
	require.Len(t, b, len(a))
	for i := range a {
		// Everything except the uuid is reproducible.
		assert.Equal(t, a[i].StudentID, b[i].StudentID)
		assert.Equal(t, a[i].Date, b[i].Date)
		assert.Equal(t, a[i].Behaviours, b[i].Behaviours)
		assert.Equal(t, a[i].Intensity, b[i].Intensity)
	}
}

func TestSeederRequiresCatalogs(t *testing.T) {
	dir := NewDirectory(nil, nil)
	log := NewIncidentLog()

	err := NewSeeder(1).Populate(log, dir, 10, time.Now())
	require.Error(t, err)
	assert.Equal(t, 0, log.Len())
}
