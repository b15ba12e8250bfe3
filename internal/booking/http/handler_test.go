package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padelhub/padel-booking-backend/internal/auth"
	"github.com/padelhub/padel-booking-backend/internal/booking"
	bookingHttp "github.com/padelhub/padel-booking-backend/internal/booking/http"
	"github.com/padelhub/padel-booking-backend/internal/court"
	"github.com/padelhub/padel-booking-backend/internal/user"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	courtService := court.NewService(court.NewMemoryRepository())
	_, err := courtService.Create(context.Background(), court.CreateRequest{Name: "Court 1", HourlyPrice: 20})
	require.NoError(t, err)

	bookingService := booking.NewService(booking.NewMemoryRepository(), courtService, booking.SystemClock())
	userService := user.NewService(user.NewMemoryRepository(), auth.NewBcryptPasswordHasherWithCost(4))
	handler := bookingHttp.NewHandler(bookingService, userService)

	// Stands in for the JWT middleware; every request acts as user 1.
	authStub := func(c *gin.Context) {
		c.Set("userID", int64(1))
		c.Next()
	}

	r := gin.New()
	bookingHttp.RegisterRoutes(r.Group("/v1"), handler, authStub)
	return r
}

func TestAvailabilityHandler(t *testing.T) {
	r := newRouter(t)

	t.Run("full day for an empty schedule", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/courts/1/availability?date=2026-09-15", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"start_time":"09:00"`)
		assert.Contains(t, w.Body.String(), `"end_time":"22:00"`)
	})

	t.Run("non-numeric court id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/courts/abc/availability?date=2026-09-15", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing date", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/courts/1/availability", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBookingIDBinding(t *testing.T) {
	r := newRouter(t)

	t.Run("get", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/bookings/abc", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("cancel", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/bookings/abc", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
