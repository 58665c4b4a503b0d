package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"standcast-backend/internal/features/stats/models"
	"standcast-backend/internal/features/stats/service"
)

type stubService struct {
	result *models.StatsResult
	calls  int
}

func (s *stubService) GetStats(ctx context.Context, fid int64) *models.StatsResult {
	s.calls++
	return s.result
}

func newTestRouter(svc service.StatsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewStatsHandler(svc).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func TestGetStatsOK(t *testing.T) {
	stub := &stubService{result: service.Synthesize(42)}
	router := newTestRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats?fid=42", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, stub.calls)

	var payload struct {
		Profile     models.Profile     `json:"profile"`
		Stats       models.StandStats  `json:"stats"`
		Details     models.StatDetails `json:"details"`
		DataQuality string             `json:"dataQuality"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, int64(42), payload.Profile.FID)
	assert.Equal(t, "synthetic", payload.DataQuality)
	assert.NotEmpty(t, payload.Details.Potential)
}

func TestGetStatsBadFID(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"missing", "/api/v1/stats"},
		{"empty", "/api/v1/stats?fid="},
		{"non-numeric", "/api/v1/stats?fid=abc"},
		{"negative", "/api/v1/stats?fid=-1"},
		{"zero", "/api/v1/stats?fid=0"},
	}

	stub := &stubService{result: service.Synthesize(1)}
	router := newTestRouter(stub)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.url, nil))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
	assert.Equal(t, 0, stub.calls, "malformed ids never reach the service")
}
