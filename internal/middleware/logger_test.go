package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hangman/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		expectedMsg   string
		expectedLevel zapcore.Level
	}{
		{
			name:          "success",
			status:        http.StatusOK,
			expectedMsg:   "Request handled",
			expectedLevel: zapcore.InfoLevel,
		},
		{
			name:          "client error",
			status:        http.StatusNotFound,
			expectedMsg:   "Request rejected",
			expectedLevel: zapcore.WarnLevel,
		},
		{
			name:          "server error",
			status:        http.StatusBadGateway,
			expectedMsg:   "Request failed",
			expectedLevel: zapcore.ErrorLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, logs := testutil.NewObservedLogger()

			router := gin.New()
			router.Use(RequestLogger(logger))
			router.GET("/probe", func(c *gin.Context) {
				c.Status(tt.status)
			})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/probe", nil))

			entries := logs.All()
			if assert.Len(t, entries, 1) {
				assert.Equal(t, tt.expectedMsg, entries[0].Message)
				assert.Equal(t, tt.expectedLevel, entries[0].Level)

				ctx := entries[0].ContextMap()
				assert.Equal(t, "GET", ctx["method"])
				assert.Equal(t, "/probe", ctx["path"])
				assert.EqualValues(t, tt.status, ctx["status"])
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	logger, logs := testutil.NewObservedLogger()

	router := gin.New()
	router.Use(Recovery(logger))
	router.GET("/boom", func(c *gin.Context) {
		panic("kaboom")
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
	assert.Equal(t, 1, logs.FilterMessage("Recovered from panic in handler").Len())
}
