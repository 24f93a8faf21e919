package service

import (
	"fmt"
	"strings"

	"todolist/internal/core/domain"
	"todolist/pkg/schema"
)

const (
	fieldTitle     = "title"
	fieldCompleted = "completed"
	fieldCategory  = "category"
	fieldPriority  = "priority"
)

// Message ids, resolved by the HTTP layer through the translation catalogs.
const (
	MsgTitleLength      = "titleLength"
	MsgTitleText        = "titleText"
	MsgTitleEmpty       = "titleEmpty"
	MsgCompletedBoolean = "completedBoolean"
	MsgCategoryInvalid  = "categoryInvalid"
	MsgPriorityInvalid  = "priorityInvalid"
)

var createTodoSchema = schema.New(
	schema.Field{
		Name:      fieldTitle,
		Required:  true,
		Before:    []schema.Transform{schema.TrimSpace},
		Tag:       fmt.Sprintf("%s,min=1,max=%d", schema.TagText, domain.MaxTitleLength),
		MessageID: MsgTitleLength,
		Messages:  map[string]string{schema.TagText: MsgTitleText},
		After:     []schema.Transform{schema.EscapeHTML},
	},
	schema.Field{
		Name:      fieldCompleted,
		Default:   false,
		Tag:       schema.TagBool,
		MessageID: MsgCompletedBoolean,
		After:     []schema.Transform{schema.ParseBool},
	},
	schema.Field{
		Name:      fieldCategory,
		Default:   string(domain.DefaultCategory),
		Tag:       oneOf(domain.CategoryNames()),
		MessageID: MsgCategoryInvalid,
	},
	schema.Field{
		Name:      fieldPriority,
		Default:   string(domain.DefaultPriority),
		Tag:       oneOf(domain.PriorityNames()),
		MessageID: MsgPriorityInvalid,
	},
)

// Update titles are trimmed but not escaped, and carry no length ceiling.
var updateTodoSchema = schema.New(
	schema.Field{
		Name:      fieldTitle,
		Before:    []schema.Transform{schema.TrimSpace},
		Tag:       "text,min=1",
		MessageID: MsgTitleEmpty,
		Messages:  map[string]string{schema.TagText: MsgTitleText},
	},
	schema.Field{
		Name:  fieldCompleted,
		After: []schema.Transform{schema.Truthy},
	},
)

func oneOf(names []string) string {
	return schema.TagText + ",oneof=" + strings.Join(names, " ")
}

func toValidationError(violations []schema.Violation) *domain.ValidationError {
	fields := make([]domain.FieldViolation, 0, len(violations))
	for _, v := range violations {
		fields = append(fields, domain.FieldViolation{
			Field:     v.Field,
			MessageID: v.MessageID,
			Value:     v.Value,
		})
	}
	return domain.NewValidationError(fields...)
}
