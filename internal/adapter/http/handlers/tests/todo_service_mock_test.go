package tests

import (
	"context"

	"todolist/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type todoServiceMock struct {
	mock.Mock
}

func (m *todoServiceMock) Create(ctx context.Context, payload domain.TodoPayload) (domain.Todo, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(domain.Todo), args.Error(1)
}

func (m *todoServiceMock) List(ctx context.Context) ([]domain.Todo, error) {
	args := m.Called(ctx)
	return todosArg(args, 0), args.Error(1)
}

func (m *todoServiceMock) GetByID(ctx context.Context, id string) (domain.Todo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Todo), args.Error(1)
}

func (m *todoServiceMock) ListByCategory(ctx context.Context, category string) ([]domain.Todo, error) {
	args := m.Called(ctx, category)
	return todosArg(args, 0), args.Error(1)
}

func (m *todoServiceMock) ListByPriority(ctx context.Context, priority string) ([]domain.Todo, error) {
	args := m.Called(ctx, priority)
	return todosArg(args, 0), args.Error(1)
}

func (m *todoServiceMock) Stats(ctx context.Context) (domain.Stats, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Stats), args.Error(1)
}

func (m *todoServiceMock) Update(ctx context.Context, id string, payload domain.TodoPayload) (domain.Todo, error) {
	args := m.Called(ctx, id, payload)
	return args.Get(0).(domain.Todo), args.Error(1)
}

func (m *todoServiceMock) Delete(ctx context.Context, id string) (domain.Todo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Todo), args.Error(1)
}

func todosArg(args mock.Arguments, index int) []domain.Todo {
	var todos []domain.Todo
	if value := args.Get(index); value != nil {
		todos = value.([]domain.Todo)
	}
	return todos
}
