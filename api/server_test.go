package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	testutils "github.com/alex-pricope/gift-selection-service/api/controllers/testing"
	"github.com/alex-pricope/gift-selection-service/logging"
	"github.com/alex-pricope/gift-selection-service/storage"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestEngine(t *testing.T, origins []string) *gin.Engine {
	t.Helper()
	logging.Log = logrus.New()

	server := NewServer(&Config{
		ServerConfig: ServerConfig{Mode: gin.TestMode},
		CORSConfig:   CORSConfig{AllowOrigins: origins},
	})
	records := &storage.FileRecordStorage{Path: filepath.Join(t.TempDir(), "selections.json")}
	return server.NewEngine(records)
}

func TestNewEngine(t *testing.T) {
	t.Run("Happy path - all endpoints are routed", func(t *testing.T) {
		r := setupTestEngine(t, []string{"*"})

		payload := map[string]string{"giftId": "G1", "giftName": "Watch", "giftPrice": "$99", "employeeId": "E1"}
		assert.Equal(t, http.StatusOK, testutils.PerformRequest(r, http.MethodPost, "/api/select-gift", payload, nil).Code)
		assert.Equal(t, http.StatusOK, testutils.PerformRequest(r, http.MethodGet, "/api/selections", nil, nil).Code)
		assert.Equal(t, http.StatusOK, testutils.PerformRequest(r, http.MethodGet, "/api/aggregate", nil, nil).Code)

		health := testutils.PerformRequest(r, http.MethodGet, "/api/health", nil, nil)
		assert.Equal(t, http.StatusOK, health.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(health.Body.Bytes(), &body))
		assert.Equal(t, "healthy", body["status"])
		assert.NotEmpty(t, body["timestamp"])
	})

	t.Run("Unhappy path - unknown route", func(t *testing.T) {
		r := setupTestEngine(t, []string{"*"})

		w := testutils.PerformRequest(r, http.MethodGet, "/api/unknown", nil, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"code":"PAGE_NOT_FOUND","message":"Page not found"}`, w.Body.String())
	})

	t.Run("Happy path - CORS preflight from a static page", func(t *testing.T) {
		r := setupTestEngine(t, []string{"*"})

		req := httptest.NewRequest(http.MethodOptions, "/api/select-gift", nil)
		req.Header.Set("Origin", "http://localhost:8000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Content-Type")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
	})

	t.Run("Happy path - CORS header on a simple request", func(t *testing.T) {
		r := setupTestEngine(t, nil)

		w := testutils.PerformRequest(r, http.MethodGet, "/api/health", nil, map[string]string{"Origin": "file://"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Unhappy path - origin outside an explicit list", func(t *testing.T) {
		r := setupTestEngine(t, []string{"http://gifts.example.com"})

		w := testutils.PerformRequest(r, http.MethodGet, "/api/health", nil, map[string]string{"Origin": "http://evil.example.com"})

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestReadConfig(t *testing.T) {
	logging.Log = logrus.New()

	t.Run("Happy path - defaults", func(t *testing.T) {
		viper.Reset()
		t.Cleanup(viper.Reset)

		conf := ReadConfig()

		assert.Equal(t, BackendFile, conf.Backend)
		assert.Equal(t, "gift_selections_backend.json", conf.FilePath)
		assert.Equal(t, 5000, conf.Port)
		assert.Equal(t, []string{"*"}, conf.AllowOrigins)
	})

	t.Run("Happy path - values from viper", func(t *testing.T) {
		viper.Reset()
		t.Cleanup(viper.Reset)
		viper.Set("storage.backend", BackendDynamoDB)
		viper.Set("storage.tableName", "Gifts")
		viper.Set("server.port", 8080)
		viper.Set("cors.allowOrigins", []string{"http://gifts.example.com"})

		conf := ReadConfig()

		assert.Equal(t, BackendDynamoDB, conf.Backend)
		assert.Equal(t, "Gifts", conf.TableName)
		assert.Equal(t, 8080, conf.Port)
		assert.Equal(t, []string{"http://gifts.example.com"}, conf.AllowOrigins)
	})
}

func TestNewRecordStorage(t *testing.T) {
	logging.Log = logrus.New()

	t.Run("Happy path - file backend", func(t *testing.T) {
		s := NewServer(&Config{StorageConfig: StorageConfig{Backend: BackendFile, FilePath: "x.json"}})

		records, err := s.newRecordStorage(context.Background())
		require.NoError(t, err)
		assert.Equal(t, &storage.FileRecordStorage{Path: "x.json"}, records)
	})

	t.Run("Unhappy path - unknown backend", func(t *testing.T) {
		s := NewServer(&Config{StorageConfig: StorageConfig{Backend: "redis"}})

		_, err := s.newRecordStorage(context.Background())
		assert.Error(t, err)
	})
}
