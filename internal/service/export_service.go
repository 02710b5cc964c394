package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/oakbridge/abc-dashboard/internal/models"
	"github.com/oakbridge/abc-dashboard/pkg/export"
)

// ExportService renders filtered incident data for the reports tab as CSV
// or PDF downloads.
type ExportService struct {
	analytics *AnalyticsService
	directory *DirectoryService
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
	logger    *zap.Logger
	title     string
}

// NewExportService constructs the service.
func NewExportService(analytics *AnalyticsService, directory *DirectoryService, logger *zap.Logger, title string) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if title == "" {
		title = "Behaviour Incident Report"
	}
	return &ExportService{
		analytics: analytics,
		directory: directory,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
		logger:    logger,
		title:     title,
	}
}

var incidentExportHeaders = []string{
	"Date", "Time", "Student", "Antecedent", "Behaviours",
	"Intensity", "Consequence", "Location", "Description", "Recorded By",
}

// CSV renders the filtered incidents as CSV bytes.
func (s *ExportService) CSV(filter models.IncidentFilter) ([]byte, error) {
	data := s.dataset(filter)
	out, err := s.csv.Render(data)
	if err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}
	s.logger.Info("report_exported", zap.String("format", "csv"), zap.Int("rows", len(data.Rows)))
	return out, nil
}

// PDF renders the filtered incidents as a tabular PDF.
func (s *ExportService) PDF(filter models.IncidentFilter) ([]byte, error) {
	data := s.dataset(filter)
	out, err := s.pdf.Render(data, s.title)
	if err != nil {
		return nil, fmt.Errorf("export pdf: %w", err)
	}
	s.logger.Info("report_exported", zap.String("format", "pdf"), zap.Int("rows", len(data.Rows)))
	return out, nil
}

// dataset flattens records into the tabular export shape, resolving ids to
// display names where the directory knows them.
func (s *ExportService) dataset(filter models.IncidentFilter) export.Dataset {
	records := s.analytics.FilterRecent(filter)
	rows := make([]map[string]string, 0, len(records))
	for _, r := range records {
		studentName := r.StudentID
		if student, err := s.directory.StudentByID(r.StudentID); err == nil {
			studentName = student.FullName
		}
		staffName := r.RecordedBy
		if staff, err := s.directory.StaffByID(r.RecordedBy); err == nil {
			staffName = staff.FullName
		}
		rows = append(rows, map[string]string{
			"Date":        r.Date.Format("2006-01-02"),
			"Time":        r.Time,
			"Student":     studentName,
			"Antecedent":  r.Antecedent,
			"Behaviours":  r.BehaviourField(),
			"Intensity":   fmt.Sprintf("%d", r.Intensity),
			"Consequence": r.Consequence,
			"Location":    r.Location,
			"Description": r.Description,
			"Recorded By": staffName,
		})
	}
	return export.Dataset{Headers: incidentExportHeaders, Rows: rows}
}
