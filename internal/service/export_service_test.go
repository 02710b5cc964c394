package service

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/oakbridge/abc-dashboard/internal/models"
	"github.com/oakbridge/abc-dashboard/internal/store"
)

func newExportFixture(t *testing.T) *ExportService {
	t.Helper()
	dir := store.NewDirectory(store.SeedStaff(), store.SeedStudents())
	log := store.NewIncidentLog()
	require.NoError(t, log.Append(models.IncidentRecord{
		ID:          "rec-1",
		Date:        time.Now().UTC().Truncate(24 * time.Hour),
		Time:        "09:15",
		StudentID:   "stu-001",
		Antecedent:  "Transition",
		Behaviours:  []string{"Elopement", "Disruption"},
		Intensity:   4,
		Consequence: "Redirection",
		Location:    "Hallway",
		Description: "left during line-up",
		RecordedBy:  "stf-jp",
	}))

	analytics := NewAnalyticsService(log, nil, zap.NewNop(), 90)
	directory := NewDirectoryService(dir)
	return NewExportService(analytics, directory, zap.NewNop(), "Behaviour Incident Report")
}

func TestExportCSVContainsResolvedNames(t *testing.T) {
	svc := newExportFixture(t)

	out, err := svc.CSV(models.IncidentFilter{StudentID: "stu-001"})
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, incidentExportHeaders, rows[0])
	// Ids are resolved to display names and the behaviour list is joined.
	assert.Contains(t, rows[1], "Ari Bennett")
	assert.Contains(t, rows[1], "Marcus Okafor")
	assert.Contains(t, rows[1], "Elopement, Disruption")
}

func TestExportCSVEmptyFilterStillHasHeaders(t *testing.T) {
	svc := newExportFixture(t)

	out, err := svc.CSV(models.IncidentFilter{StudentID: "stu-none"})
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, incidentExportHeaders, rows[0])
}

func TestExportPDFProducesDocument(t *testing.T) {
	svc := newExportFixture(t)

	out, err := svc.PDF(models.IncidentFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
