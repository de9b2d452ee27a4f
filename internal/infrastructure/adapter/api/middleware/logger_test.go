package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fundr-ph/donation-ledger/internal/domain/entity"
	mcore "github.com/fundr-ph/donation-ledger/mocks/port/core"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLoggerMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success logs at info with caller identity", func(t *testing.T) {
		logger := new(mcore.MockLogger)
		logger.On("Info", "Request processed", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["caller_id"] == "donor-1" &&
				fields["caller_role"] == "donor" &&
				fields["query"] == "category=Health"
		})).Once()

		router := gin.New()
		router.Use(Logger(logger))
		router.GET("/donations", func(c *gin.Context) {
			c.Set(identityKey, entity.Identity{UserID: "donor-1", Role: entity.RoleDonor})
			c.JSON(http.StatusOK, gin.H{})
		})

		req := httptest.NewRequest(http.MethodGet, "/donations?category=Health", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		logger.AssertExpectations(t)
	})

	t.Run("Client error logs at warn", func(t *testing.T) {
		logger := new(mcore.MockLogger)
		logger.On("Warn", "Request rejected", mock.MatchedBy(func(fields map[string]any) bool {
			_, hasCaller := fields["caller_id"]
			return fields["status"] == http.StatusBadRequest && !hasCaller
		})).Once()

		router := gin.New()
		router.Use(Logger(logger))
		router.POST("/donations", func(c *gin.Context) {
			c.Status(http.StatusBadRequest)
		})

		req := httptest.NewRequest(http.MethodPost, "/donations", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		logger.AssertExpectations(t)
	})

	t.Run("Server error logs at error", func(t *testing.T) {
		logger := new(mcore.MockLogger)
		logger.On("Error", "Request failed", mock.Anything).Once()

		router := gin.New()
		router.Use(Logger(logger))
		router.GET("/admin/report", func(c *gin.Context) {
			c.Status(http.StatusInternalServerError)
		})

		req := httptest.NewRequest(http.MethodGet, "/admin/report", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		logger.AssertExpectations(t)
	})
}
