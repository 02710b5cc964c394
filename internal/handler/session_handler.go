package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oakbridge/abc-dashboard/internal/dto"
	"github.com/oakbridge/abc-dashboard/internal/middleware"
	"github.com/oakbridge/abc-dashboard/internal/models"
	"github.com/oakbridge/abc-dashboard/internal/service"
	"github.com/oakbridge/abc-dashboard/internal/session"
	appErrors "github.com/oakbridge/abc-dashboard/pkg/errors"
	"github.com/oakbridge/abc-dashboard/pkg/response"
)

// SessionHandler exposes profile selection and navigation endpoints.
type SessionHandler struct {
	router    *session.Router
	directory *service.DirectoryService
}

// NewSessionHandler constructs SessionHandler.
func NewSessionHandler(router *session.Router, directory *service.DirectoryService) *SessionHandler {
	return &SessionHandler{router: router, directory: directory}
}

// State godoc
// @Summary Current session state and resolved view
// @Tags Session
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /session [get]
func (h *SessionHandler) State(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	if sess == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	response.JSON(c, http.StatusOK, h.view(sess))
}

// SelectProfile godoc
// @Summary Select a staff profile (mock login, no credential check)
// @Tags Session
// @Accept json
// @Produce json
// @Param payload body dto.SelectProfileRequest true "Profile selection"
// @Success 200 {object} response.Envelope
// @Router /session/profile [post]
func (h *SessionHandler) SelectProfile(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	if sess == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	var req dto.SelectProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	staff, err := h.directory.StaffByID(req.StaffID)
	if err != nil {
		response.Error(c, err)
		return
	}
	sess.Navigate(models.PageStaffArea, session.WithRole(staff.Role, staff.ID))
	response.JSON(c, http.StatusOK, h.view(sess))
}

// Navigate godoc
// @Summary Move the session to a target page
// @Tags Session
// @Accept json
// @Produce json
// @Param payload body dto.NavigateRequest true "Navigation request"
// @Success 200 {object} response.Envelope
// @Router /session/navigate [post]
func (h *SessionHandler) Navigate(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	if sess == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	var req dto.NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if !models.ValidPage(req.Page) {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown page"))
		return
	}
	var fields []session.Field
	if req.StudentID != nil {
		fields = append(fields, session.WithStudent(*req.StudentID))
	}
	if req.SubPage != nil {
		if !models.ValidSubPage(*req.SubPage) {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown staff sub-page"))
			return
		}
		fields = append(fields, session.WithSubPage(*req.SubPage))
	}
	sess.Navigate(req.Page, fields...)
	response.JSON(c, http.StatusOK, h.view(sess))
}

// view resolves guards for the current page and flattens session plus
// resolution into the response payload. The snapshot is taken after the
// resolve so the payload reflects any guard redirect.
func (h *SessionHandler) view(sess *session.Session) dto.SessionView {
	res := h.router.Resolve(sess)
	snap := sess.Snapshot()
	return dto.SessionView{
		SessionID:  snap.ID,
		Page:       snap.Page,
		Role:       snap.Role,
		StaffID:    snap.StaffID,
		StudentID:  snap.StudentID,
		SubPage:    snap.SubPage,
		View:       res.View,
		Redirected: res.Redirected,
		Notice:     res.Notice,
	}
}
