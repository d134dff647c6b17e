package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/waste_dashboard/internal/aggregation"
	"github.com/shenikar/waste_dashboard/internal/config"
	"github.com/shenikar/waste_dashboard/internal/leaderboard"
	"github.com/shenikar/waste_dashboard/internal/models"
	"github.com/shenikar/waste_dashboard/internal/service"
	"github.com/shenikar/waste_dashboard/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testAPIKey = "test-api-key"

var authHeader = map[string]string{"X-API-Key": testAPIKey}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*mocks.MockDashboardService, *mocks.MockCollectorService, *gin.Engine) {
	return newTestHandlerWithConfig(t, &config.Config{
		APIKeys:        []string{testAPIKey},
		MaxUploadBytes: 1 << 20,
	})
}

func newTestHandlerWithConfig(t *testing.T, cfg *config.Config) (*mocks.MockDashboardService, *mocks.MockCollectorService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	dashboardService := mocks.NewMockDashboardService(ctrl)
	collectorService := mocks.NewMockCollectorService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	handler := NewHandler(dashboardService, collectorService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return dashboardService, collectorService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// multipartCSV собирает тело multipart/form-data с CSV в поле file
func multipartCSV(t *testing.T, content string) (*bytes.Buffer, map[string]string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "bins.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, map[string]string{
		"Content-Type": writer.FormDataContentType(),
		"X-API-Key":    testAPIKey,
	}
}

func sampleDashboard() *models.Dashboard {
	records := aggregation.NormalizeAll([]models.RawRecord{
		{Locality: "Koramangala", WasteType: "Plastic", Confidence: "80"},
		{Locality: "Koramangala", WasteType: "Plastic", Confidence: "90"},
		{Locality: "Koramangala", WasteType: "Organic", Confidence: "100"},
		{Locality: "Indiranagar", WasteType: "Metal", Confidence: "40"},
	})
	return aggregation.BuildDashboard(uuid.New(), time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), records)
}

func TestUploadCSV_Success(t *testing.T) {
	// Подготовка
	dashboardService, _, router := newTestHandler(t)
	expected := sampleDashboard()
	body, headers := multipartCSV(t, "Locality,Waste_Type,Confidence(%)\nKoramangala,Plastic,80\nIndiranagar,Metal,40\n")

	// Ожидания
	dashboardService.EXPECT().
		Ingest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, raws []models.RawRecord) (*models.Dashboard, error) {
			require.Len(t, raws, 2)
			assert.Equal(t, "Koramangala", raws[0].Locality)
			assert.Equal(t, "80", raws[0].Confidence)
			assert.Equal(t, "Metal", raws[1].WasteType)
			return expected, nil
		}).Times(1)

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/dashboard/upload", body, headers)

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)

	var resp DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, expected.RunID, resp.RunID)
	require.Len(t, resp.Localities, 2)
	assert.Equal(t, "Koramangala", resp.Localities[0].Locality)
	assert.Equal(t, "CRITICAL", resp.Localities[0].Classification)
	assert.Equal(t, 90.0, resp.Localities[0].OverallAverage)
	assert.Equal(t, "85.00", resp.Localities[0].WasteTypes[0].Display)
	assert.Equal(t, "OK", resp.Localities[1].Classification)
	require.NotNil(t, resp.Global.MostFilled)
	assert.Equal(t, "Koramangala", resp.Global.MostFilled.Locality)
	assert.Equal(t, 1, resp.Global.CriticalCount)
	require.NotNil(t, resp.Global.MeanAverage)
	assert.Equal(t, 65.0, *resp.Global.MeanAverage)
	assert.Equal(t, []string{"Koramangala", "Indiranagar"}, resp.Charts.LocalityAverages.Labels)
}

func TestUploadCSV_MissingFile(t *testing.T) {
	dashboardService, _, router := newTestHandler(t)

	dashboardService.EXPECT().Ingest(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("comment", "no file"))
	require.NoError(t, writer.Close())

	w := makeRequest(router, http.MethodPost, "/api/v1/dashboard/upload", body, map[string]string{
		"Content-Type": writer.FormDataContentType(),
		"X-API-Key":    testAPIKey,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "csv file is required")
}

func TestUploadCSV_TooLarge(t *testing.T) {
	dashboardService, _, router := newTestHandlerWithConfig(t, &config.Config{
		APIKeys:        []string{testAPIKey},
		MaxUploadBytes: 64,
	})

	dashboardService.EXPECT().Ingest(gomock.Any(), gomock.Any()).Times(0)

	content := "Locality,Waste_Type,Confidence(%)\n" + strings.Repeat("Koramangala,Plastic,80\n", 20)
	body, headers := multipartCSV(t, content)

	w := makeRequest(router, http.MethodPost, "/api/v1/dashboard/upload", body, headers)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestUploadCSV_EmptyFileProducesEmptyDashboard(t *testing.T) {
	dashboardService, _, router := newTestHandler(t)
	empty := aggregation.BuildDashboard(uuid.New(), time.Now().UTC(), nil)

	dashboardService.EXPECT().
		Ingest(gomock.Any(), gomock.Len(0)).
		Return(empty, nil).
		Times(1)

	body, headers := multipartCSV(t, "")
	w := makeRequest(router, http.MethodPost, "/api/v1/dashboard/upload", body, headers)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Localities)
	assert.Nil(t, resp.Global.MostFilled)
	assert.Nil(t, resp.Global.MeanAverage)
	assert.Contains(t, w.Body.String(), `"mean_average":null`)
}

func TestUploadCSV_Unauthorized(t *testing.T) {
	dashboardService, _, router := newTestHandler(t)

	dashboardService.EXPECT().Ingest(gomock.Any(), gomock.Any()).Times(0)

	body, headers := multipartCSV(t, "Locality,Waste_Type,Confidence(%)\nA,B,1\n")
	delete(headers, "X-API-Key")

	w := makeRequest(router, http.MethodPost, "/api/v1/dashboard/upload", body, headers)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestUploadCSV_ServiceError(t *testing.T) {
	dashboardService, _, router := newTestHandler(t)

	dashboardService.EXPECT().
		Ingest(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("redis unavailable")).
		Times(1)

	body, headers := multipartCSV(t, "Locality,Waste_Type,Confidence(%)\nA,B,1\n")
	w := makeRequest(router, http.MethodPost, "/api/v1/dashboard/upload", body, headers)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestUploadRecords_Success(t *testing.T) {
	dashboardService, _, router := newTestHandler(t)
	expected := sampleDashboard()

	dashboardService.EXPECT().
		Ingest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, raws []models.RawRecord) (*models.Dashboard, error) {
			require.Len(t, raws, 2)
			assert.Equal(t, "87.5", raws[0].Confidence) // число из JSON передается как текст
			assert.Equal(t, "abc", raws[1].Confidence)
			assert.Equal(t, "12.97", raws[0].Lat)
			return expected, nil
		}).Times(1)

	reqBody := `{"records":[
		{"locality":"Koramangala","waste_type":"Plastic","confidence":87.5,"lat":12.97,"lng":"77.59"},
		{"locality":"Indiranagar","waste_type":"Metal","confidence":"abc"}
	]}`
	w := makeRequest(router, http.MethodPost, "/api/v1/dashboard/records", bytes.NewBufferString(reqBody), authHeader)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, expected.RunID, resp.RunID)
}

func TestUploadRecords_InvalidJSON(t *testing.T) {
	dashboardService, _, router := newTestHandler(t)

	dashboardService.EXPECT().Ingest(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, http.MethodPost, "/api/v1/dashboard/records", bytes.NewBufferString(`{"records": [`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestUploadRecords_ValidationError(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name:     "records missing",
			body:     `{}`,
			expected: "Error:Field validation for 'Records' failed on the 'required' tag",
		},
		{
			name:     "locality too long",
			body:     fmt.Sprintf(`{"records":[{"locality":"%s","waste_type":"Plastic","confidence":"10"}]}`, strings.Repeat("x", 256)),
			expected: "Error:Field validation for 'Locality' failed on the 'max' tag",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dashboardService, _, router := newTestHandler(t)

			dashboardService.EXPECT().Ingest(gomock.Any(), gomock.Any()).Times(0)

			w := makeRequest(router, http.MethodPost, "/api/v1/dashboard/records", bytes.NewBufferString(tc.body), authHeader)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tc.expected)
		})
	}
}

func TestUploadRecords_BearerToken(t *testing.T) {
	dashboardService, _, router := newTestHandler(t)

	dashboardService.EXPECT().
		Ingest(gomock.Any(), gomock.Any()).
		Return(sampleDashboard(), nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/dashboard/records", bytes.NewBufferString(`{"records":[]}`),
		map[string]string{"Authorization": "Bearer " + testAPIKey})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUploadRecords_InvalidAPIKey(t *testing.T) {
	dashboardService, _, router := newTestHandler(t)

	dashboardService.EXPECT().Ingest(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/dashboard/records", bytes.NewBufferString(`{"records":[]}`),
		map[string]string{"X-API-Key": "wrong-key"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestUploadRecords_NoConfiguredKeys(t *testing.T) {
	dashboardService, _, router := newTestHandlerWithConfig(t, &config.Config{MaxUploadBytes: 1 << 20})

	dashboardService.EXPECT().Ingest(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/dashboard/records", bytes.NewBufferString(`{"records":[]}`), authHeader)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetDashboard_Success(t *testing.T) {
	dashboardService, _, router := newTestHandler(t)
	expected := sampleDashboard()

	dashboardService.EXPECT().
		Latest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter aggregation.Filter) (*models.Dashboard, error) {
			assert.True(t, filter.IsEmpty())
			return expected, nil
		}).Times(1)

	// Чтение дашборда не требует API-ключа
	w := makeRequest(router, http.MethodGet, "/api/v1/dashboard", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, expected.RunID, resp.RunID)
	assert.True(t, expected.GeneratedAt.Equal(resp.GeneratedAt))
	require.Len(t, resp.Alerts, 1)
	assert.Equal(t, "critical", resp.Alerts[0].Level)
}

func TestGetDashboard_WithFilter(t *testing.T) {
	dashboardService, _, router := newTestHandler(t)

	dashboardService.EXPECT().
		Latest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter aggregation.Filter) (*models.Dashboard, error) {
			assert.Equal(t, []string{"Koramangala", "Indiranagar"}, filter.Localities)
			assert.Equal(t, []string{"Plastic"}, filter.WasteTypes)
			return sampleDashboard(), nil
		}).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/dashboard?locality=Koramangala&locality=Indiranagar&waste_type=Plastic", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetDashboard_NoSnapshot(t *testing.T) {
	dashboardService, _, router := newTestHandler(t)

	dashboardService.EXPECT().
		Latest(gomock.Any(), gomock.Any()).
		Return(nil, service.ErrNoSnapshot).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/dashboard", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no data uploaded yet")
}

func TestGetDashboard_ServiceError(t *testing.T) {
	dashboardService, _, router := newTestHandler(t)

	dashboardService.EXPECT().
		Latest(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: could not get snapshot: %w", errors.New("boom"))).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/dashboard", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetLeaderboard_Success(t *testing.T) {
	_, collectorService, router := newTestHandler(t)
	entries := leaderboard.Rank([]*models.Collector{
		{Name: "Ramesh", Points: 120},
		{Name: "Suresh", Points: 140},
		{Name: "Mahesh", Points: 100},
	})

	collectorService.EXPECT().
		Leaderboard(gomock.Any()).
		Return(entries, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/collectors/leaderboard", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []LeaderboardEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 3)
	assert.Equal(t, LeaderboardEntryResponse{Rank: 1, Name: "Suresh", Points: 140}, resp[0])
	assert.Equal(t, LeaderboardEntryResponse{Rank: 3, Name: "Mahesh", Points: 100}, resp[2])
}

func TestGetLeaderboard_ServiceError(t *testing.T) {
	_, collectorService, router := newTestHandler(t)

	collectorService.EXPECT().
		Leaderboard(gomock.Any()).
		Return(nil, errors.New("db down")).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/collectors/leaderboard", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetCollector_Success(t *testing.T) {
	_, collectorService, router := newTestHandler(t)
	collector := &models.Collector{ID: 1, Name: "Ramesh", Points: 120, History: "Collected 120kg this month"}

	collectorService.EXPECT().
		GetCollector(gomock.Any(), "Ramesh").
		Return(collector, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/collectors/Ramesh", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp CollectorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Ramesh", resp.Name)
	assert.Equal(t, 120, resp.Points)
	assert.Equal(t, collector.History, resp.History)
}

func TestGetCollector_NotFound(t *testing.T) {
	_, collectorService, router := newTestHandler(t)

	collectorService.EXPECT().
		GetCollector(gomock.Any(), "Nobody").
		Return(nil, service.ErrCollectorNotFound).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/collectors/Nobody", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "collector not found")
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
