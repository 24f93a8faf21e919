package service

import (
	"context"
	"fmt"

	"todolist/internal/core/domain"
)

// DefaultSeeds populate a fresh collection at startup.
var DefaultSeeds = []domain.TodoPayload{
	{"title": "Learn Go", "category": string(domain.CategoryLearning), "priority": string(domain.PriorityHigh)},
	{"title": "Build a todo app", "category": string(domain.CategoryProject), "priority": string(domain.PriorityMedium)},
}

func (s *TodoService) Seed(ctx context.Context, seeds []domain.TodoPayload) error {
	for i, payload := range seeds {
		if _, err := s.Create(ctx, payload); err != nil {
			return fmt.Errorf("seed todo %d: %w", i, err)
		}
	}
	return nil
}
