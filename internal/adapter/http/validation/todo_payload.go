package validation

import (
	"bytes"
	"encoding/json"
	"errors"

	"todolist/internal/core/domain"
)

var ErrInvalidTodoPayload = errors.New("invalid todo payload")

// DecodeTodoPayload decodes a request body into a payload. An empty body is an
// empty payload; anything other than a JSON object is rejected.
func DecodeTodoPayload(body []byte) (domain.TodoPayload, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return domain.TodoPayload{}, nil
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, ErrInvalidTodoPayload
	}
	if payload == nil {
		// A literal null decodes to a nil map.
		return nil, ErrInvalidTodoPayload
	}
	return domain.TodoPayload(payload), nil
}
