package domain

import "time"

type Category string

const (
	CategoryPersonal Category = "personal"
	CategoryWork     Category = "work"
	CategoryLearning Category = "learning"
	CategoryProject  Category = "project"
	CategoryHealth   Category = "health"
	CategoryOther    Category = "other"
)

// Categories lists every category in canonical order.
var Categories = []Category{
	CategoryPersonal,
	CategoryWork,
	CategoryLearning,
	CategoryProject,
	CategoryHealth,
	CategoryOther,
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Priorities lists every priority in canonical order.
var Priorities = []Priority{
	PriorityLow,
	PriorityMedium,
	PriorityHigh,
	PriorityUrgent,
}

const (
	DefaultCategory = CategoryOther
	DefaultPriority = PriorityMedium
	MaxTitleLength  = 200
)

func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func (p Priority) IsValid() bool {
	for _, known := range Priorities {
		if p == known {
			return true
		}
	}
	return false
}

func CategoryNames() []string {
	names := make([]string, 0, len(Categories))
	for _, c := range Categories {
		names = append(names, string(c))
	}
	return names
}

func PriorityNames() []string {
	names := make([]string, 0, len(Priorities))
	for _, p := range Priorities {
		names = append(names, string(p))
	}
	return names
}

type Todo struct {
	ID        string
	Title     string
	Completed bool
	Category  Category
	Priority  Priority
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// TodoPayload is a decoded JSON object as received from a client. Values
// have not been validated yet.
type TodoPayload map[string]any

type Stats struct {
	Total      int
	Completed  int
	Pending    int
	ByCategory map[Category]int
	ByPriority map[Priority]int
}
