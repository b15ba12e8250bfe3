package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padelhub/padel-booking-backend/internal/court"
	courtHttp "github.com/padelhub/padel-booking-backend/internal/court/http"
)

func newRouter(t *testing.T) (*gin.Engine, court.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	service := court.NewService(court.NewMemoryRepository())
	handler := courtHttp.NewHandler(service)

	passthrough := func(c *gin.Context) { c.Next() }
	r := gin.New()
	courtHttp.RegisterRoutes(r.Group("/v1"), handler, passthrough, passthrough)
	return r, service
}

func perform(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetCourtHandler(t *testing.T) {
	r, service := newRouter(t)

	c, err := service.Create(context.Background(), court.CreateRequest{Name: "Court 1", HourlyPrice: 20})
	require.NoError(t, err)

	t.Run("known court", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/v1/courts/1", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), c.Name)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/v1/courts/abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown court", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/v1/courts/999", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateCourtHandler(t *testing.T) {
	r, service := newRouter(t)

	_, err := service.Create(context.Background(), court.CreateRequest{Name: "Court 1", HourlyPrice: 20})
	require.NoError(t, err)

	t.Run("blank name", func(t *testing.T) {
		w := perform(r, http.MethodPatch, "/v1/courts/1", `{"name":"  "}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown court", func(t *testing.T) {
		w := perform(r, http.MethodPatch, "/v1/courts/999", `{"name":"Court X"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		w := perform(r, http.MethodDelete, "/v1/courts/abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
