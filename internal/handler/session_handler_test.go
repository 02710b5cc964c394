package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakbridge/abc-dashboard/internal/middleware"
	"github.com/oakbridge/abc-dashboard/internal/models"
	"github.com/oakbridge/abc-dashboard/internal/service"
	"github.com/oakbridge/abc-dashboard/internal/session"
	"github.com/oakbridge/abc-dashboard/internal/store"
)

type responseEnvelope struct {
	Data  map[string]interface{} `json:"data"`
	Error map[string]interface{} `json:"error"`
	Meta  map[string]interface{} `json:"meta"`
}

func newSessionHandlerFixture() *SessionHandler {
	directory := service.NewDirectoryService(store.NewDirectory(store.SeedStaff(), store.SeedStudents()))
	return NewSessionHandler(session.NewRouter(), directory)
}

func testContext(t *testing.T, method, target, body string) (*gin.Context, *httptest.ResponseRecorder, *session.Session) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	sess := session.New("sess-test")
	c.Set(middleware.ContextSessionKey, sess)
	return c, rec, sess
}

func TestSessionStateStartsOnLanding(t *testing.T) {
	handler := newSessionHandlerFixture()
	c, rec, _ := testContext(t, http.MethodGet, "/session", "")

	handler.State(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, string(models.PageLanding), envelope.Data["page"])
	assert.Equal(t, string(models.ViewLanding), envelope.Data["view"])
}

func TestSelectProfileMovesToStaffArea(t *testing.T) {
	handler := newSessionHandlerFixture()
	c, rec, sess := testContext(t, http.MethodPost, "/session/profile", `{"staff_id":"stf-py"}`)

	handler.SelectProfile(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.PageStaffArea, sess.Page)
	assert.Equal(t, models.RolePrimaryYear, sess.Role)
	assert.Equal(t, "stf-py", sess.StaffID)
}

func TestSelectProfileUnknownStaffIs404(t *testing.T) {
	handler := newSessionHandlerFixture()
	c, rec, sess := testContext(t, http.MethodPost, "/session/profile", `{"staff_id":"ghost"}`)

	handler.SelectProfile(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, models.PageLanding, sess.Page)
}

func TestNavigateToStudentDetailWithoutStudentRedirects(t *testing.T) {
	handler := newSessionHandlerFixture()
	c, rec, sess := testContext(t, http.MethodPost, "/session/navigate", `{"page":"student_detail"}`)
	sess.Navigate(models.PageStaffArea, session.WithRole(models.RolePrimaryYear, "stf-py"))

	handler.Navigate(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, string(models.PageStaffArea), envelope.Data["page"])
	assert.Equal(t, true, envelope.Data["redirected"])
	assert.NotEmpty(t, envelope.Data["notice"])
	// Role survives the guard redirect.
	assert.Equal(t, models.RolePrimaryYear, sess.Role)
}

func TestNavigateRejectsUnknownPage(t *testing.T) {
	handler := newSessionHandlerFixture()
	c, rec, _ := testContext(t, http.MethodPost, "/session/navigate", `{"page":"wormhole"}`)

	handler.Navigate(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNavigateQuickLogWithContextResolvesForm(t *testing.T) {
	handler := newSessionHandlerFixture()
	c, rec, sess := testContext(t, http.MethodPost, "/session/navigate", `{"page":"quick_log","student_id":"stu-001"}`)
	sess.Navigate(models.PageStaffArea, session.WithRole(models.RoleJuniorPrimary, "stf-jp"))

	handler.Navigate(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, string(models.ViewQuickLogForm), envelope.Data["view"])
	assert.Equal(t, "stu-001", envelope.Data["student_id"])
}
