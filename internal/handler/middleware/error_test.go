//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"little-lemon/internal/domain/booking"
	"little-lemon/internal/handler/middleware"
	"little-lemon/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(discardLogger()))
	r.Use(middleware.ErrorHandler(discardLogger()))
	return r
}

func TestCustomRecovery(t *testing.T) {
	r := newErrorRouter()
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil)
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}

func TestErrorHandler(t *testing.T) {
	r := newErrorRouter()
	r.GET("/recorded", func(c *gin.Context) {
		_ = c.Error(booking.ErrSubmissionRejected)
	})
	r.GET("/unexpected", func(c *gin.Context) {
		_ = c.Error(errors.New("disk full"))
	})
	r.GET("/status-only", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.GET("/silent", func(c *gin.Context) {})

	t.Run("recorded domain error is mapped", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/recorded", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "")
	})

	t.Run("unknown error becomes 500", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/unexpected", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "")
	})

	t.Run("explicit status without body is kept", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/status-only", nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("handler that wrote nothing is a 500", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/silent", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}
