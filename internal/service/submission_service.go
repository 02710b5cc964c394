package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/oakbridge/abc-dashboard/internal/models"
	"github.com/oakbridge/abc-dashboard/internal/store"
	appErrors "github.com/oakbridge/abc-dashboard/pkg/errors"
)

// SubmissionService validates and appends incident records. It is the sole
// writer of the incident table: on success the table grows by exactly one
// row and no other record is touched. Failures are always caller-correctable
// input errors, never transient faults, so there are no retry semantics.
type SubmissionService struct {
	log       *store.IncidentLog
	directory *store.Directory
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
	now       func() time.Time
}

// NewSubmissionService constructs the service.
func NewSubmissionService(log *store.IncidentLog, directory *store.Directory, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *SubmissionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubmissionService{
		log:       log,
		directory: directory,
		validator: validate,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

// SubmitIncidentRequest carries the raw form values supplied by the
// presentation layer. Date is "YYYY-MM-DD" and Time "HH:MM"; both default
// to the current moment when blank.
type SubmitIncidentRequest struct {
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	StudentID   string   `json:"student_id" validate:"required"`
	Antecedent  string   `json:"antecedent" validate:"required"`
	Behaviours  []string `json:"behaviours"`
	Intensity   int      `json:"intensity" validate:"min=1,max=5"`
	Consequence string   `json:"consequence" validate:"required"`
	Location    string   `json:"location" validate:"required"`
	Context     string   `json:"context"`
	Description string   `json:"description"`
	RecordedBy  string   `json:"recorded_by" validate:"required"`
}

// Submit validates the candidate and appends it as a new row. The returned
// error names every missing or invalid field; nothing is saved partially.
func (s *SubmissionService) Submit(req SubmitIncidentRequest) (*models.IncidentRecord, error) {
	if missing := s.missingFields(req); len(missing) > 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation,
			fmt.Sprintf("missing required field(s): %s", strings.Join(missing, ", ")))
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	if err := s.checkCatalogValues(req); err != nil {
		return nil, err
	}
	if s.directory.StudentByID(req.StudentID) == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation,
			fmt.Sprintf("student_id %q does not reference a known student", req.StudentID))
	}
	if s.directory.StaffByID(req.RecordedBy) == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation,
			fmt.Sprintf("recorded_by %q does not reference a known staff member", req.RecordedBy))
	}

	date, timeOfDay, err := s.resolveTimestamp(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	record := models.IncidentRecord{
		ID:          uuid.NewString(),
		Date:        date,
		Time:        timeOfDay,
		StudentID:   req.StudentID,
		Antecedent:  req.Antecedent,
		Behaviours:  append([]string(nil), req.Behaviours...),
		Intensity:   req.Intensity,
		Consequence: req.Consequence,
		Location:    req.Location,
		Context:     strings.TrimSpace(req.Context),
		Description: strings.TrimSpace(req.Description),
		RecordedBy:  req.RecordedBy,
	}

	if err := s.log.Append(record); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to append incident")
	}

	if s.metrics != nil {
		s.metrics.ObserveSubmission(record.Intensity)
	}
	s.logger.Info("incident_logged",
		zap.String("incident_id", record.ID),
		zap.String("student_id", record.StudentID),
		zap.Int("intensity", record.Intensity),
	)
	return &record, nil
}

// missingFields implements the submission contract: behaviour list and
// description are both required and each absent field is named.
func (s *SubmissionService) missingFields(req SubmitIncidentRequest) []string {
	var missing []string
	if len(req.Behaviours) == 0 {
		missing = append(missing, "behaviours")
	}
	if strings.TrimSpace(req.Description) == "" {
		missing = append(missing, "description")
	}
	return missing
}

func (s *SubmissionService) checkCatalogValues(req SubmitIncidentRequest) error {
	if !models.InCatalog(models.Antecedents, req.Antecedent) {
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown antecedent %q", req.Antecedent))
	}
	if !models.InCatalog(models.Consequences, req.Consequence) {
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown consequence %q", req.Consequence))
	}
	if !models.InCatalog(models.Locations, req.Location) {
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown location %q", req.Location))
	}
	for _, b := range req.Behaviours {
		if !models.InCatalog(models.Behaviours, b) {
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown behaviour %q", b))
		}
	}
	return nil
}

func (s *SubmissionService) resolveTimestamp(rawDate, rawTime string) (time.Time, string, error) {
	now := s.now().UTC()
	date := now.Truncate(24 * time.Hour)
	if rawDate != "" {
		parsed, err := time.Parse("2006-01-02", rawDate)
		if err != nil {
			return time.Time{}, "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", rawDate))
		}
		date = parsed
	}
	timeOfDay := now.Format("15:04")
	if rawTime != "" {
		if _, err := time.Parse("15:04", rawTime); err != nil {
			return time.Time{}, "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid time %q, expected HH:MM", rawTime))
		}
		timeOfDay = rawTime
	}
	return date, timeOfDay, nil
}
