package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/oakbridge/abc-dashboard/internal/models"
)

// parsePositiveInt parses a strictly positive integer query value.
func parsePositiveInt(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("expected positive integer, got %q", raw)
	}
	return n, nil
}

// parseWindowDays reads the optional window_days query parameter. A zero
// return with ok=true means "use the configured default".
func parseWindowDays(c *gin.Context) (int, bool) {
	raw := c.Query("window_days")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// incidentFilterFromQuery builds the shared student/window filter used by
// the incidents, analytics and report endpoints.
func incidentFilterFromQuery(c *gin.Context) (models.IncidentFilter, bool) {
	filter := models.IncidentFilter{StudentID: c.Query("student_id")}
	windowDays, ok := parseWindowDays(c)
	if !ok {
		return models.IncidentFilter{}, false
	}
	filter.WindowDays = windowDays
	return filter, true
}
