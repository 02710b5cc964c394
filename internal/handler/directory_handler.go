package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oakbridge/abc-dashboard/internal/dto"
	"github.com/oakbridge/abc-dashboard/internal/middleware"
	"github.com/oakbridge/abc-dashboard/internal/models"
	"github.com/oakbridge/abc-dashboard/internal/service"
	appErrors "github.com/oakbridge/abc-dashboard/pkg/errors"
	"github.com/oakbridge/abc-dashboard/pkg/response"
)

// DirectoryHandler exposes the staff/student catalogs and form enumerations.
type DirectoryHandler struct {
	directory *service.DirectoryService
	analytics *service.AnalyticsService
}

// NewDirectoryHandler constructs DirectoryHandler.
func NewDirectoryHandler(directory *service.DirectoryService, analytics *service.AnalyticsService) *DirectoryHandler {
	return &DirectoryHandler{directory: directory, analytics: analytics}
}

// Staff godoc
// @Summary List selectable staff profiles
// @Tags Directory
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /staff [get]
func (h *DirectoryHandler) Staff(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.directory.ActiveStaff())
}

// Students godoc
// @Summary List students visible to the session's role
// @Tags Directory
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /students [get]
func (h *DirectoryHandler) Students(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	if sess == nil {
		response.JSON(c, http.StatusOK, []models.Student{})
		return
	}
	snap := sess.Snapshot()
	if !snap.HasRole() {
		// No profile selected yet: nothing to show, mirroring the
		// landing-page empty state rather than an auth failure.
		response.JSON(c, http.StatusOK, []models.Student{})
		return
	}
	response.JSON(c, http.StatusOK, h.directory.VisibleStudents(snap.Role, snap.StaffID))
}

// Student godoc
// @Summary Student detail with recent analytics
// @Tags Directory
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id} [get]
func (h *DirectoryHandler) Student(c *gin.Context) {
	student, err := h.directory.StudentByID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	filter := models.IncidentFilter{StudentID: student.ID}
	if windowDays, ok := parseWindowDays(c); ok {
		filter.WindowDays = windowDays
	} else {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid window_days"))
		return
	}

	records := h.analytics.FilterRecent(filter)
	overview := dto.StudentOverview{
		Student:   *student,
		Summary:   h.analytics.SummaryMetrics(records),
		Trend:     h.analytics.TrendByDate(records),
		Behaviour: h.analytics.FrequencyBreakdown(records, models.FieldBehaviour),
		Recent:    records,
	}
	response.JSON(c, http.StatusOK, overview)
}

// Catalog godoc
// @Summary Fixed incident category enumerations for form dropdowns
// @Tags Directory
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /catalog [get]
func (h *DirectoryHandler) Catalog(c *gin.Context) {
	response.JSON(c, http.StatusOK, models.NewCatalog())
}
