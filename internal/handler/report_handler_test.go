package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/oakbridge/abc-dashboard/internal/models"
	"github.com/oakbridge/abc-dashboard/internal/service"
	"github.com/oakbridge/abc-dashboard/internal/store"
)

func newReportHandlerFixture(t *testing.T) *ReportHandler {
	t.Helper()
	dir := store.NewDirectory(store.SeedStaff(), store.SeedStudents())
	log := store.NewIncidentLog()
	require.NoError(t, log.Append(models.IncidentRecord{
		ID:          "rec-1",
		Date:        time.Now().UTC().Truncate(24 * time.Hour),
		Time:        "13:45",
		StudentID:   "stu-001",
		Antecedent:  "Peer Conflict",
		Behaviours:  []string{"Verbal Aggression"},
		Intensity:   2,
		Consequence: "Restorative Chat",
		Location:    "Playground",
		Description: "argument over equipment",
		RecordedBy:  "stf-jp",
	}))
	analytics := service.NewAnalyticsService(log, nil, zap.NewNop(), 90)
	directory := service.NewDirectoryService(dir)
	exports := service.NewExportService(analytics, directory, zap.NewNop(), "Behaviour Incident Report")
	return NewReportHandler(exports)
}

func TestReportCSVDownload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newReportHandlerFixture(t)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/reports/incidents.csv", nil)

	handler.CSV(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "incidents.csv")
	assert.Contains(t, rec.Body.String(), "Verbal Aggression")
}

func TestReportPDFDownload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newReportHandlerFixture(t)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/reports/incidents.pdf", nil)

	handler.PDF(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestReportRejectsBadWindow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newReportHandlerFixture(t)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/reports/incidents.csv?window_days=-3", nil)

	handler.CSV(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
