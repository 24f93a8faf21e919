package service

import (
	"context"
	"fmt"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
)

type TodoService struct {
	todoRepository ports.TodoRepository
	clock          ports.Clock
	ids            ports.IDGenerator
}

var _ ports.TodoService = (*TodoService)(nil)

func NewTodoService(todoRepository ports.TodoRepository, clock ports.Clock, ids ports.IDGenerator) *TodoService {
	return &TodoService{
		todoRepository: todoRepository,
		clock:          clock,
		ids:            ids,
	}
}

func (s *TodoService) Create(ctx context.Context, payload domain.TodoPayload) (domain.Todo, error) {
	values, violations := createTodoSchema.Evaluate(payload)
	if len(violations) > 0 {
		return domain.Todo{}, toValidationError(violations)
	}

	title, _ := values.String(fieldTitle)
	completed, _ := values.Bool(fieldCompleted)
	category, _ := values.String(fieldCategory)
	priority, _ := values.String(fieldPriority)

	todo := domain.Todo{
		ID:        s.ids.NewID(),
		Title:     title,
		Completed: completed,
		Category:  domain.Category(category),
		Priority:  domain.Priority(priority),
		CreatedAt: s.clock.Now(),
	}
	if err := s.todoRepository.Insert(ctx, todo); err != nil {
		return domain.Todo{}, fmt.Errorf("create todo: %w", err)
	}
	return todo, nil
}

func (s *TodoService) List(ctx context.Context) ([]domain.Todo, error) {
	return s.todoRepository.List(ctx)
}

func (s *TodoService) GetByID(ctx context.Context, id string) (domain.Todo, error) {
	return s.todoRepository.FindByID(ctx, id)
}

func (s *TodoService) ListByCategory(ctx context.Context, category string) ([]domain.Todo, error) {
	wanted := domain.Category(category)
	if !wanted.IsValid() {
		return nil, domain.NewValidationError(domain.FieldViolation{
			Field:     fieldCategory,
			MessageID: MsgCategoryInvalid,
			Value:     category,
		})
	}
	return s.filter(ctx, func(todo domain.Todo) bool { return todo.Category == wanted })
}

func (s *TodoService) ListByPriority(ctx context.Context, priority string) ([]domain.Todo, error) {
	wanted := domain.Priority(priority)
	if !wanted.IsValid() {
		return nil, domain.NewValidationError(domain.FieldViolation{
			Field:     fieldPriority,
			MessageID: MsgPriorityInvalid,
			Value:     priority,
		})
	}
	return s.filter(ctx, func(todo domain.Todo) bool { return todo.Priority == wanted })
}

func (s *TodoService) Stats(ctx context.Context) (domain.Stats, error) {
	todos, err := s.todoRepository.List(ctx)
	if err != nil {
		return domain.Stats{}, err
	}

	stats := domain.Stats{
		Total:      len(todos),
		ByCategory: make(map[domain.Category]int, len(domain.Categories)),
		ByPriority: make(map[domain.Priority]int, len(domain.Priorities)),
	}
	for _, c := range domain.Categories {
		stats.ByCategory[c] = 0
	}
	for _, p := range domain.Priorities {
		stats.ByPriority[p] = 0
	}

	for _, todo := range todos {
		if todo.Completed {
			stats.Completed++
		}
		stats.ByCategory[todo.Category]++
		stats.ByPriority[todo.Priority]++
	}
	stats.Pending = stats.Total - stats.Completed

	return stats, nil
}

// Update applies the supplied fields of payload. UpdatedAt is refreshed even
// when payload carries no known field.
func (s *TodoService) Update(ctx context.Context, id string, payload domain.TodoPayload) (domain.Todo, error) {
	return s.todoRepository.Update(ctx, id, func(todo *domain.Todo) error {
		values, violations := updateTodoSchema.Evaluate(payload)
		if len(violations) > 0 {
			return toValidationError(violations)
		}

		if title, ok := values.String(fieldTitle); ok {
			todo.Title = title
		}
		if completed, ok := values.Bool(fieldCompleted); ok {
			todo.Completed = completed
		}

		now := s.clock.Now()
		todo.UpdatedAt = &now
		return nil
	})
}

func (s *TodoService) Delete(ctx context.Context, id string) (domain.Todo, error) {
	return s.todoRepository.Delete(ctx, id)
}

func (s *TodoService) filter(ctx context.Context, keep func(domain.Todo) bool) ([]domain.Todo, error) {
	todos, err := s.todoRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.Todo, 0, len(todos))
	for _, todo := range todos {
		if keep(todo) {
			matched = append(matched, todo)
		}
	}
	return matched, nil
}
