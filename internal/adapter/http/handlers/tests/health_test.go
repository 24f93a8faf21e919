package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"todolist/internal/adapter/http/handlers"
	"todolist/internal/adapter/http/middleware"
	"todolist/internal/adapter/memory"
	"todolist/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_CheckHealth(t *testing.T) {
	handler := handlers.NewHealthHandler(memory.NewTodoRepository(), "todolist", "1.2.3")

	router := gin.New()
	router.GET("/api/health", handler.CheckHealth)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got handlers.HealthBasic
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "todolist", got.AppName)
	require.Equal(t, "1.2.3", got.AppVersion)
	require.Equal(t, handlers.StatusOk, got.Message)
	require.NotEmpty(t, got.CurrentSystemTime)
}

func TestHealthHandler_CheckHealth_NoStore(t *testing.T) {
	handler := handlers.NewHealthHandler(nil, "todolist", "dev")

	router := gin.New()
	router.GET("/api/health", handler.CheckHealth)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got handlers.HealthBasic
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, handlers.StatusDown, got.Message)
}

func TestHealthHandler_CheckHealthReport(t *testing.T) {
	repo := memory.NewTodoRepository()
	require.NoError(t, repo.Insert(context.Background(), domain.Todo{ID: "1", Title: "x"}))
	handler := handlers.NewHealthHandler(repo, "todolist", "dev")

	router := gin.New()
	router.GET("/api/health/report", middleware.LanguageMiddleware(), handler.CheckHealthReport)

	req := httptest.NewRequest(http.MethodGet, "/api/health/report", nil)
	req.Header.Set("Accept-Language", "fr")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got handlers.HealthAdvanced
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "fr", got.Language)
	require.Equal(t, 1, got.TodoCount)
	require.Equal(t, handlers.StatusOk, got.Status.Store)
}
