package dto

type TodoItem struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Completed bool    `json:"completed"`
	Category  string  `json:"category"`
	Priority  string  `json:"priority"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt *string `json:"updatedAt,omitempty"`
}

type TodoListResponse struct {
	Message string     `json:"message"`
	Count   int        `json:"count"`
	Todos   []TodoItem `json:"todos"`
}

type TodoCategoryResponse struct {
	Message  string     `json:"message"`
	Count    int        `json:"count"`
	Category string     `json:"category"`
	Todos    []TodoItem `json:"todos"`
}

type TodoPriorityResponse struct {
	Message  string     `json:"message"`
	Count    int        `json:"count"`
	Priority string     `json:"priority"`
	Todos    []TodoItem `json:"todos"`
}

type TodoResponse struct {
	Message string   `json:"message"`
	Todo    TodoItem `json:"todo"`
}

type Stats struct {
	Total      int            `json:"total"`
	Completed  int            `json:"completed"`
	Pending    int            `json:"pending"`
	ByCategory map[string]int `json:"byCategory"`
	ByPriority map[string]int `json:"byPriority"`
}

type StatsResponse struct {
	Message string `json:"message"`
	Stats   Stats  `json:"stats"`
}
