package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oakbridge/abc-dashboard/internal/service"
	appErrors "github.com/oakbridge/abc-dashboard/pkg/errors"
	"github.com/oakbridge/abc-dashboard/pkg/response"
)

// ReportHandler serves the reports-tab downloads.
type ReportHandler struct {
	exports *service.ExportService
}

// NewReportHandler constructs ReportHandler.
func NewReportHandler(exports *service.ExportService) *ReportHandler {
	return &ReportHandler{exports: exports}
}

// CSV godoc
// @Summary Download filtered incidents as CSV
// @Tags Reports
// @Produce text/csv
// @Param student_id query string false "Student ID (blank for school-wide)"
// @Param window_days query int false "Trailing window in days"
// @Success 200 {file} file
// @Router /reports/incidents.csv [get]
func (h *ReportHandler) CSV(c *gin.Context) {
	filter, ok := incidentFilterFromQuery(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid window_days"))
		return
	}
	out, err := h.exports.CSV(filter)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "csv export failed"))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="incidents.csv"`)
	c.Data(http.StatusOK, "text/csv", out)
}

// PDF godoc
// @Summary Download filtered incidents as PDF
// @Tags Reports
// @Produce application/pdf
// @Param student_id query string false "Student ID (blank for school-wide)"
// @Param window_days query int false "Trailing window in days"
// @Success 200 {file} file
// @Router /reports/incidents.pdf [get]
func (h *ReportHandler) PDF(c *gin.Context) {
	filter, ok := incidentFilterFromQuery(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid window_days"))
		return
	}
	out, err := h.exports.PDF(filter)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "pdf export failed"))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="incidents.pdf"`)
	c.Data(http.StatusOK, "application/pdf", out)
}
