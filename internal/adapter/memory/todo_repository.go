package memory

import (
	"context"
	"fmt"
	"sync"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
)

// TodoRepository keeps todos in insertion order. One RWMutex guards the whole
// collection.
type TodoRepository struct {
	mu    sync.RWMutex
	todos []domain.Todo
}

var _ ports.TodoRepository = (*TodoRepository)(nil)

func NewTodoRepository() *TodoRepository {
	return &TodoRepository{todos: make([]domain.Todo, 0)}
}

func (r *TodoRepository) List(ctx context.Context) ([]domain.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	todos := make([]domain.Todo, 0, len(r.todos))
	for _, todo := range r.todos {
		todos = append(todos, cloneTodo(todo))
	}
	return todos, nil
}

func (r *TodoRepository) FindByID(ctx context.Context, id string) (domain.Todo, error) {
	if err := ctx.Err(); err != nil {
		return domain.Todo{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Todo{}, domain.ErrTodoNotFound
	}
	return cloneTodo(r.todos[i]), nil
}

func (r *TodoRepository) Insert(ctx context.Context, todo domain.Todo) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(todo.ID) >= 0 {
		return fmt.Errorf("insert todo %q: duplicate id", todo.ID)
	}
	r.todos = append(r.todos, cloneTodo(todo))
	return nil
}

func (r *TodoRepository) Update(ctx context.Context, id string, mutate func(*domain.Todo) error) (domain.Todo, error) {
	if err := ctx.Err(); err != nil {
		return domain.Todo{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Todo{}, domain.ErrTodoNotFound
	}

	// Mutate a copy so a failed mutation leaves the stored record untouched.
	todo := cloneTodo(r.todos[i])
	if err := mutate(&todo); err != nil {
		return domain.Todo{}, err
	}
	todo.ID = r.todos[i].ID
	r.todos[i] = todo
	return cloneTodo(todo), nil
}

func (r *TodoRepository) Delete(ctx context.Context, id string) (domain.Todo, error) {
	if err := ctx.Err(); err != nil {
		return domain.Todo{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Todo{}, domain.ErrTodoNotFound
	}
	deleted := r.todos[i]
	r.todos = append(r.todos[:i], r.todos[i+1:]...)
	return deleted, nil
}

func (r *TodoRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.todos), nil
}

func (r *TodoRepository) indexOf(id string) int {
	for i := range r.todos {
		if r.todos[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneTodo(todo domain.Todo) domain.Todo {
	if todo.UpdatedAt != nil {
		value := *todo.UpdatedAt
		todo.UpdatedAt = &value
	}
	return todo
}
