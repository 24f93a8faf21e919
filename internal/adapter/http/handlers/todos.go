package handlers

import (
	"errors"
	"net/http"
	"strings"

	"todolist/internal/adapter/http/dto"
	"todolist/internal/adapter/http/mapper"
	"todolist/internal/adapter/http/middleware"
	"todolist/internal/adapter/http/validation"
	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
	"todolist/pkg/apierrors"
	"todolist/pkg/translator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgFetchedTodos    = "fetchedTodos"
	msgFetchedTodo     = "fetchedTodo"
	msgFetchedStats    = "fetchedStats"
	msgFetchedCategory = "fetchedCategory"
	msgFetchedPriority = "fetchedPriority"
	msgCreatedTodo     = "createdTodo"
)

type TodoHandler struct {
	todoService ports.TodoService
}

func NewTodoHandler(todoService ports.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

func (h *TodoHandler) ListTodos(c *gin.Context) {
	lang := middleware.GetLang(c)
	todos, err := h.todoService.List(c.Request.Context())
	if err != nil {
		respondInternal(c, apierrors.MsgFailListTodos, "failed to list todos", err)
		return
	}

	c.JSON(http.StatusOK, dto.TodoListResponse{
		Message: translator.Localize(msgFetchedTodos, lang, nil),
		Count:   len(todos),
		Todos:   mapper.ToTodoItems(todos),
	})
}

func (h *TodoHandler) GetStats(c *gin.Context) {
	lang := middleware.GetLang(c)
	stats, err := h.todoService.Stats(c.Request.Context())
	if err != nil {
		respondInternal(c, apierrors.MsgFailFetchStats, "failed to compute todo stats", err)
		return
	}

	c.JSON(http.StatusOK, dto.StatsResponse{
		Message: translator.Localize(msgFetchedStats, lang, nil),
		Stats:   mapper.ToStats(stats),
	})
}

func (h *TodoHandler) ListTodosByCategory(c *gin.Context) {
	lang := middleware.GetLang(c)
	category := c.Param("category")

	todos, err := h.todoService.ListByCategory(c.Request.Context(), category)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateOptionsError(http.StatusBadRequest, apierrors.MsgInvalidCategory, domain.CategoryNames(), lang),
			)
			return
		}
		respondInternal(c, apierrors.MsgFailListTodos, "failed to list todos by category", err, zap.String("category", category))
		return
	}

	c.JSON(http.StatusOK, dto.TodoCategoryResponse{
		Message:  translator.Localize(msgFetchedCategory, lang, map[string]any{"Category": category}),
		Count:    len(todos),
		Category: category,
		Todos:    mapper.ToTodoItems(todos),
	})
}

func (h *TodoHandler) ListTodosByPriority(c *gin.Context) {
	lang := middleware.GetLang(c)
	priority := c.Param("priority")

	todos, err := h.todoService.ListByPriority(c.Request.Context(), priority)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateOptionsError(http.StatusBadRequest, apierrors.MsgInvalidPriority, domain.PriorityNames(), lang),
			)
			return
		}
		respondInternal(c, apierrors.MsgFailListTodos, "failed to list todos by priority", err, zap.String("priority", priority))
		return
	}

	c.JSON(http.StatusOK, dto.TodoPriorityResponse{
		Message:  translator.Localize(msgFetchedPriority, lang, map[string]any{"Priority": priority}),
		Count:    len(todos),
		Priority: priority,
		Todos:    mapper.ToTodoItems(todos),
	})
}

func (h *TodoHandler) GetTodo(c *gin.Context) {
	lang := middleware.GetLang(c)
	id := c.Param("id")

	todo, err := h.todoService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrTodoNotFound) {
			respondNotFound(c)
			return
		}
		respondInternal(c, apierrors.MsgFailFetchTodo, "failed to fetch todo", err, zap.String("todo_id", id))
		return
	}

	c.JSON(http.StatusOK, dto.TodoResponse{
		Message: translator.Localize(msgFetchedTodo, lang, nil),
		Todo:    mapper.ToTodoItem(todo),
	})
}

func (h *TodoHandler) CreateTodo(c *gin.Context) {
	lang := middleware.GetLang(c)

	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	todo, err := h.todoService.Create(c.Request.Context(), payload)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.JSON(
				http.StatusUnprocessableEntity,
				apierrors.CreateValidationError(http.StatusUnprocessableEntity, apierrors.MsgValidationFailed, fieldErrors(verr, lang), lang),
			)
			return
		}
		respondInternal(c, apierrors.MsgFailCreateTodo, "failed to create todo", err)
		return
	}

	c.JSON(http.StatusCreated, dto.TodoResponse{
		Message: translator.Localize(msgCreatedTodo, lang, nil),
		Todo:    mapper.ToTodoItem(todo),
	})
}

func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	lang := middleware.GetLang(c)
	id := c.Param("id")

	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	todo, err := h.todoService.Update(c.Request.Context(), id, payload)
	if err != nil {
		if errors.Is(err, domain.ErrTodoNotFound) {
			respondNotFound(c)
			return
		}
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateValidationError(http.StatusBadRequest, apierrors.MsgInvalidTodoPayload, fieldErrors(verr, lang), lang),
			)
			return
		}
		respondInternal(c, apierrors.MsgFailUpdateTodo, "failed to update todo", err, zap.String("todo_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTodoItem(todo))
}

func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	id := c.Param("id")

	todo, err := h.todoService.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrTodoNotFound) {
			respondNotFound(c)
			return
		}
		respondInternal(c, apierrors.MsgFailDeleteTodo, "failed to delete todo", err, zap.String("todo_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTodoItem(todo))
}

func bindPayload(c *gin.Context) (domain.TodoPayload, bool) {
	body, err := c.GetRawData()
	if err == nil {
		var payload domain.TodoPayload
		payload, err = validation.DecodeTodoPayload(body)
		if err == nil {
			return payload, true
		}
	}

	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTodoPayload, middleware.GetLang(c)),
	)
	return nil, false
}

func fieldErrors(verr *domain.ValidationError, lang string) []apierrors.FieldErr {
	data := map[string]any{
		"Categories": strings.Join(domain.CategoryNames(), ", "),
		"Priorities": strings.Join(domain.PriorityNames(), ", "),
	}

	fields := make([]apierrors.FieldErr, 0, len(verr.Violations))
	for _, v := range verr.Violations {
		fields = append(fields, apierrors.FieldErr{
			Field:   v.Field,
			Message: apierrors.GetTransErrorMsgWithData(v.MessageID, lang, data),
			Value:   v.Value,
		})
	}
	return fields
}

func respondNotFound(c *gin.Context) {
	c.JSON(
		http.StatusNotFound,
		apierrors.CreateError(http.StatusNotFound, apierrors.MsgTodoNotFound, middleware.GetLang(c)),
	)
}

func respondInternal(c *gin.Context, msgKey, logMsg string, err error, fields ...zap.Field) {
	fields = append(fields, zap.String("request_id", middleware.GetRequestID(c)), zap.Error(err))
	zap.L().Error(logMsg, fields...)
	_ = c.Error(err)
	c.JSON(
		http.StatusInternalServerError,
		apierrors.CreateError(http.StatusInternalServerError, msgKey, middleware.GetLang(c)),
	)
}
