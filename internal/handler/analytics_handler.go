package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oakbridge/abc-dashboard/internal/dto"
	"github.com/oakbridge/abc-dashboard/internal/models"
	"github.com/oakbridge/abc-dashboard/internal/service"
	appErrors "github.com/oakbridge/abc-dashboard/pkg/errors"
	"github.com/oakbridge/abc-dashboard/pkg/response"
)

// AnalyticsHandler exposes the aggregation endpoints behind the dashboard
// charts.
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
	topN      int
}

// NewAnalyticsHandler constructs the analytics handler. topN caps
// breakdown responses when the caller does not pass a limit.
func NewAnalyticsHandler(analytics *service.AnalyticsService, topN int) *AnalyticsHandler {
	if topN <= 0 {
		topN = 5
	}
	return &AnalyticsHandler{analytics: analytics, topN: topN}
}

// Summary godoc
// @Summary Headline metrics for a student or the whole school
// @Tags Analytics
// @Produce json
// @Param student_id query string false "Student ID (blank for school-wide)"
// @Param window_days query int false "Trailing window in days"
// @Success 200 {object} response.Envelope
// @Router /analytics/summary [get]
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	filter, ok := incidentFilterFromQuery(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid window_days"))
		return
	}
	records := h.analytics.FilterRecent(filter)
	resp := dto.SummaryResponse{
		StudentID:  filter.StudentID,
		WindowDays: h.effectiveWindow(filter),
		Summary:    h.analytics.SummaryMetrics(records),
	}
	response.JSON(c, http.StatusOK, resp)
}

// Trend godoc
// @Summary Daily incident counts, ascending by date
// @Tags Analytics
// @Produce json
// @Param student_id query string false "Student ID (blank for school-wide)"
// @Param window_days query int false "Trailing window in days"
// @Success 200 {object} response.Envelope
// @Router /analytics/trend [get]
func (h *AnalyticsHandler) Trend(c *gin.Context) {
	filter, ok := incidentFilterFromQuery(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid window_days"))
		return
	}
	records := h.analytics.FilterRecent(filter)
	resp := dto.TrendResponse{
		StudentID:  filter.StudentID,
		WindowDays: h.effectiveWindow(filter),
		Points:     h.analytics.TrendByDate(records),
	}
	response.JSON(c, http.StatusOK, resp)
}

// Breakdown godoc
// @Summary Category frequency breakdown, descending by count
// @Tags Analytics
// @Produce json
// @Param field query string true "antecedent | behaviour | consequence | location"
// @Param student_id query string false "Student ID (blank for school-wide)"
// @Param window_days query int false "Trailing window in days"
// @Param top query int false "Limit to the top N entries"
// @Success 200 {object} response.Envelope
// @Router /analytics/breakdown [get]
func (h *AnalyticsHandler) Breakdown(c *gin.Context) {
	field, err := service.ValidBreakdownField(c.DefaultQuery("field", models.FieldBehaviour))
	if err != nil {
		response.Error(c, err)
		return
	}
	filter, ok := incidentFilterFromQuery(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid window_days"))
		return
	}

	records := h.analytics.FilterRecent(filter)
	entries := h.analytics.FrequencyBreakdown(records, field)
	if raw := c.Query("top"); raw != "" {
		n, convErr := parsePositiveInt(raw)
		if convErr != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid top"))
			return
		}
		entries = h.analytics.TopN(entries, n)
	} else {
		entries = h.analytics.TopN(entries, h.topN)
	}

	resp := dto.BreakdownResponse{
		StudentID:  filter.StudentID,
		WindowDays: h.effectiveWindow(filter),
		Field:      field,
		Entries:    entries,
	}
	response.JSON(c, http.StatusOK, resp)
}

func (h *AnalyticsHandler) effectiveWindow(filter models.IncidentFilter) int {
	if filter.WindowDays > 0 {
		return filter.WindowDays
	}
	return h.analytics.DefaultWindowDays()
}
