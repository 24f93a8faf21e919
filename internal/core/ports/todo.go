package ports

import (
	"context"
	"time"

	"todolist/internal/core/domain"
)

type TodoRepository interface {
	List(ctx context.Context) ([]domain.Todo, error)
	FindByID(ctx context.Context, id string) (domain.Todo, error)
	Insert(ctx context.Context, todo domain.Todo) error
	// Update runs mutate on the stored record under the repository lock and
	// persists the result only when mutate returns nil.
	Update(ctx context.Context, id string, mutate func(*domain.Todo) error) (domain.Todo, error)
	Delete(ctx context.Context, id string) (domain.Todo, error)
	Count(ctx context.Context) (int, error)
}

type TodoService interface {
	Create(ctx context.Context, payload domain.TodoPayload) (domain.Todo, error)
	List(ctx context.Context) ([]domain.Todo, error)
	GetByID(ctx context.Context, id string) (domain.Todo, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Todo, error)
	ListByPriority(ctx context.Context, priority string) ([]domain.Todo, error)
	Stats(ctx context.Context) (domain.Stats, error)
	Update(ctx context.Context, id string, payload domain.TodoPayload) (domain.Todo, error)
	Delete(ctx context.Context, id string) (domain.Todo, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID() string
}
