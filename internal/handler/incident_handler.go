package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oakbridge/abc-dashboard/internal/service"
	appErrors "github.com/oakbridge/abc-dashboard/pkg/errors"
	"github.com/oakbridge/abc-dashboard/pkg/response"
)

// IncidentHandler exposes the quick-log write path and incident listings.
type IncidentHandler struct {
	submissions *service.SubmissionService
	analytics   *service.AnalyticsService
}

// NewIncidentHandler constructs IncidentHandler.
func NewIncidentHandler(submissions *service.SubmissionService, analytics *service.AnalyticsService) *IncidentHandler {
	return &IncidentHandler{submissions: submissions, analytics: analytics}
}

// Submit godoc
// @Summary Log a new ABC incident
// @Tags Incidents
// @Accept json
// @Produce json
// @Param payload body service.SubmitIncidentRequest true "Incident candidate"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /incidents [post]
func (h *IncidentHandler) Submit(c *gin.Context) {
	var req service.SubmitIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	record, err := h.submissions.Submit(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, record)
}

// List godoc
// @Summary Recent incidents filtered by student and window
// @Tags Incidents
// @Produce json
// @Param student_id query string false "Student ID (blank for school-wide)"
// @Param window_days query int false "Trailing window in days"
// @Success 200 {object} response.Envelope
// @Router /incidents [get]
func (h *IncidentHandler) List(c *gin.Context) {
	filter, ok := incidentFilterFromQuery(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid window_days"))
		return
	}
	records := h.analytics.FilterRecent(filter)
	response.JSON(c, http.StatusOK, records, map[string]interface{}{"count": len(records)})
}
