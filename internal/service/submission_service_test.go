package service

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/oakbridge/abc-dashboard/internal/models"
	"github.com/oakbridge/abc-dashboard/internal/store"
	appErrors "github.com/oakbridge/abc-dashboard/pkg/errors"
)

func newSubmissionFixture(t *testing.T) (*SubmissionService, *store.IncidentLog) {
	t.Helper()
	dir := store.NewDirectory(store.SeedStaff(), store.SeedStudents())
	log := store.NewIncidentLog()
	svc := NewSubmissionService(log, dir, validator.New(), nil, zap.NewNop())
	return svc, log
}

func validSubmitRequest() SubmitIncidentRequest {
	return SubmitIncidentRequest{
		StudentID:   "stu-001",
		Antecedent:  "Transition",
		Behaviours:  []string{"Elopement"},
		Intensity:   4,
		Consequence: "Redirection",
		Location:    "Classroom",
		Context:     "Start of the school day",
		Description: "ran from room",
		RecordedBy:  "stf-jp",
	}
}

func TestSubmitAppendsExactlyOneRow(t *testing.T) {
	svc, log := newSubmissionFixture(t)

	record, err := svc.Submit(validSubmitRequest())
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, 1, log.Len())
	assert.NotEmpty(t, record.ID)
	assert.True(t, log.Contains(record.ID))
	assert.Equal(t, "stu-001", record.StudentID)
	assert.Equal(t, []string{"Elopement"}, record.Behaviours)
	assert.False(t, record.Date.IsZero())
	assert.NotEmpty(t, record.Time)
}

func TestSubmitGeneratesUniqueIDs(t *testing.T) {
	svc, log := newSubmissionFixture(t)

	seen := make(map[string]struct{})
	for i := 0; i < 25; i++ {
		record, err := svc.Submit(validSubmitRequest())
		require.NoError(t, err)
		_, dup := seen[record.ID]
		require.False(t, dup, "id %s issued twice", record.ID)
		seen[record.ID] = struct{}{}
	}
	assert.Equal(t, 25, log.Len())
}

func TestSubmitMissingBehavioursNamesField(t *testing.T) {
	svc, log := newSubmissionFixture(t)

	req := validSubmitRequest()
	req.Behaviours = nil
	_, err := svc.Submit(req)

	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
	assert.Contains(t, err.Error(), "behaviours")
	assert.Equal(t, 0, log.Len())
}

func TestSubmitMissingDescriptionNamesField(t *testing.T) {
	svc, log := newSubmissionFixture(t)

	req := validSubmitRequest()
	req.Description = "   "
	_, err := svc.Submit(req)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "description")
	assert.Equal(t, 0, log.Len())
}

func TestSubmitMissingBothNamesBothFields(t *testing.T) {
	svc, log := newSubmissionFixture(t)

	req := validSubmitRequest()
	req.Behaviours = nil
	req.Description = ""
	_, err := svc.Submit(req)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "behaviours")
	assert.Contains(t, err.Error(), "description")
	assert.Equal(t, 0, log.Len())
}

func TestSubmitRejectsUnknownStudent(t *testing.T) {
	svc, log := newSubmissionFixture(t)

	req := validSubmitRequest()
	req.StudentID = "stu-missing"
	_, err := svc.Submit(req)

	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
	assert.Contains(t, err.Error(), "stu-missing")
	assert.Equal(t, 0, log.Len())
}

func TestSubmitRejectsOutOfRangeIntensity(t *testing.T) {
	svc, log := newSubmissionFixture(t)

	for _, intensity := range []int{0, 6, -1} {
		req := validSubmitRequest()
		req.Intensity = intensity
		_, err := svc.Submit(req)
		require.Error(t, err, "intensity %d must be rejected", intensity)
	}
	assert.Equal(t, 0, log.Len())
}

func TestSubmitRejectsUnknownCatalogValues(t *testing.T) {
	svc, log := newSubmissionFixture(t)

	req := validSubmitRequest()
	req.Behaviours = []string{"Juggling"}
	_, err := svc.Submit(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Juggling")

	req = validSubmitRequest()
	req.Location = "Moon"
	_, err = svc.Submit(req)
	require.Error(t, err)

	assert.Equal(t, 0, log.Len())
}

func TestSubmitRejectsMalformedDateAndTime(t *testing.T) {
	svc, log := newSubmissionFixture(t)

	req := validSubmitRequest()
	req.Date = "31-08-2026"
	_, err := svc.Submit(req)
	require.Error(t, err)

	req = validSubmitRequest()
	req.Time = "9 o'clock"
	_, err = svc.Submit(req)
	require.Error(t, err)

	assert.Equal(t, 0, log.Len())
}

func TestSubmitThenFilterReturnsRecordExactlyOnce(t *testing.T) {
	dir := store.NewDirectory(store.SeedStaff(), store.SeedStudents())
	log := store.NewIncidentLog()
	submit := NewSubmissionService(log, dir, validator.New(), nil, zap.NewNop())
	analytics := NewAnalyticsService(log, nil, zap.NewNop(), 90)

	record, err := submit.Submit(validSubmitRequest())
	require.NoError(t, err)

	recent := analytics.FilterRecent(models.IncidentFilter{StudentID: "stu-001", WindowDays: 90})
	matches := 0
	for _, r := range recent {
		if r.ID == record.ID {
			matches++
		}
	}
	assert.Equal(t, 1, matches)
}

func TestSubmitOnEmptyStoreDrivesSummary(t *testing.T) {
	dir := store.NewDirectory(store.SeedStaff(), store.SeedStudents())
	log := store.NewIncidentLog()
	submit := NewSubmissionService(log, dir, validator.New(), nil, zap.NewNop())
	analytics := NewAnalyticsService(log, nil, zap.NewNop(), 90)

	_, err := submit.Submit(validSubmitRequest())
	require.NoError(t, err)

	records := analytics.FilterRecent(models.IncidentFilter{StudentID: "stu-001"})
	summary := analytics.SummaryMetrics(records)

	assert.Equal(t, 1, summary.Count)
	assert.Equal(t, 4.0, summary.MeanIntensity)
	assert.Equal(t, "Elopement", summary.TopBehaviour)
}
