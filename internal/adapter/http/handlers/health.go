package handlers

import (
	"context"
	"net/http"
	"time"

	"todolist/internal/adapter/http/middleware"
	"todolist/internal/core/ports"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	StatusOk           = "ok"
	StatusDown         = "down"
	healthStoreTimeout = 2 * time.Second
)

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthServices struct {
	Store string `json:"store"`
}

type HealthAdvanced struct {
	AppName           string         `json:"app_name"`
	AppVersion        string         `json:"app_version"`
	CurrentSystemTime string         `json:"current_system_time"`
	Language          string         `json:"language"`
	TodoCount         int            `json:"todo_count"`
	Status            HealthServices `json:"status"`
}

type HealthHandler struct {
	todoRepository ports.TodoRepository
	appName        string
	appVersion     string
}

func NewHealthHandler(todoRepository ports.TodoRepository, appName, appVersion string) *HealthHandler {
	return &HealthHandler{
		todoRepository: todoRepository,
		appName:        appName,
		appVersion:     appVersion,
	}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	statusCode := http.StatusOK
	message := StatusOk

	if _, ok := h.checkStore(c.Request.Context()); !ok {
		statusCode = http.StatusInternalServerError
		message = StatusDown
	}

	c.JSON(statusCode, HealthBasic{
		AppName:           h.appName,
		AppVersion:        h.appVersion,
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Message:           message,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	count, ok := h.checkStore(c.Request.Context())

	storeStatus := StatusDown
	if ok {
		storeStatus = StatusOk
	}

	c.JSON(http.StatusOK, HealthAdvanced{
		AppName:           h.appName,
		AppVersion:        h.appVersion,
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Language:          middleware.GetLang(c),
		TodoCount:         count,
		Status: HealthServices{
			Store: storeStatus,
		},
	})
}

func (h *HealthHandler) checkStore(ctx context.Context) (int, bool) {
	if h.todoRepository == nil {
		return 0, false
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, healthStoreTimeout)
	defer cancel()

	count, err := h.todoRepository.Count(timeoutCtx)
	if err != nil {
		zap.L().Warn("todo store health check failed", zap.Error(err))
		return 0, false
	}
	return count, true
}
