package mapper

import (
	"time"

	"todolist/internal/adapter/http/dto"
	"todolist/internal/core/domain"
)

func ToTodoItems(todos []domain.Todo) []dto.TodoItem {
	items := make([]dto.TodoItem, 0, len(todos))
	for _, todo := range todos {
		items = append(items, ToTodoItem(todo))
	}
	return items
}

func ToTodoItem(todo domain.Todo) dto.TodoItem {
	item := dto.TodoItem{
		ID:        todo.ID,
		Title:     todo.Title,
		Completed: todo.Completed,
		Category:  string(todo.Category),
		Priority:  string(todo.Priority),
		CreatedAt: formatTime(todo.CreatedAt),
	}

	if todo.UpdatedAt != nil {
		value := formatTime(*todo.UpdatedAt)
		item.UpdatedAt = &value
	}

	return item
}

func ToStats(stats domain.Stats) dto.Stats {
	out := dto.Stats{
		Total:      stats.Total,
		Completed:  stats.Completed,
		Pending:    stats.Pending,
		ByCategory: make(map[string]int, len(domain.Categories)),
		ByPriority: make(map[string]int, len(domain.Priorities)),
	}
	for _, c := range domain.Categories {
		out.ByCategory[string(c)] = stats.ByCategory[c]
	}
	for _, p := range domain.Priorities {
		out.ByPriority[string(p)] = stats.ByPriority[p]
	}
	return out
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
