package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakbridge/abc-dashboard/internal/session"
)

func TestSessionMiddlewareCreatesAndEchoesID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	manager := session.NewManager(time.Hour, 10)

	var captured *session.Session
	router := gin.New()
	router.Use(Session(manager))
	router.GET("/", func(c *gin.Context) {
		captured = SessionFromContext(c)
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotNil(t, captured)
	assert.Equal(t, captured.ID, rec.Header().Get("X-Session-ID"))
	assert.Equal(t, 1, manager.Count())
}

func TestSessionMiddlewareReusesKnownID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	manager := session.NewManager(time.Hour, 10)
	existing := manager.GetOrCreate("")

	var captured *session.Session
	router := gin.New()
	router.Use(Session(manager))
	router.GET("/", func(c *gin.Context) {
		captured = SessionFromContext(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Session-ID", existing.ID)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Same(t, existing, captured)
	assert.Equal(t, 1, manager.Count())
}

func TestSessionFromContextWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, SessionFromContext(c))
}
