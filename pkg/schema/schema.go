// Package schema evaluates decoded JSON objects against an ordered list of
// field rules. Constraints are expressed as go-playground/validator tags, the
// same tag language gin uses for request binding.
package schema

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// TagText accepts only string values. Put it first in a tag chain when the
// following constraints assume a string (oneof, min, max).
const TagText = "text"

// TagBool accepts JSON booleans, the numbers 0 and 1, and the strings
// "true", "false", "1" and "0". ParseBool converts the accepted forms.
const TagBool = "bool"

// TagRequired is reported for required fields absent from the payload.
const TagRequired = "required"

type Transform func(value any) any

type Field struct {
	Name     string
	Required bool
	// Default is stored when the field is absent. Nil means no default.
	Default any
	// Before runs ahead of the constraint check; the checked value is also the
	// value reported in a violation.
	Before []Transform
	Tag    string
	// Messages maps a failing tag to a message id. MessageID is the fallback.
	Messages  map[string]string
	MessageID string
	After     []Transform
}

type Violation struct {
	Field     string
	Tag       string
	MessageID string
	Value     any
}

type Values map[string]any

type Schema struct {
	fields   []Field
	validate *validator.Validate
}

func New(fields ...Field) *Schema {
	v := validator.New()
	if err := v.RegisterValidation(TagText, isText); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation(TagBool, isBool); err != nil {
		panic(err)
	}
	return &Schema{fields: fields, validate: v}
}

// Evaluate checks every field in declaration order. It returns the accepted
// values when there is no violation, otherwise nil and the violations in
// field order.
func (s *Schema) Evaluate(payload map[string]any) (Values, []Violation) {
	values := make(Values, len(s.fields))
	var violations []Violation

	for _, f := range s.fields {
		value, present := payload[f.Name]
		if !present {
			if f.Required {
				violations = append(violations, Violation{
					Field:     f.Name,
					Tag:       TagRequired,
					MessageID: f.messageFor(TagRequired),
				})
				continue
			}
			if f.Default != nil {
				values[f.Name] = f.Default
			}
			continue
		}

		for _, transform := range f.Before {
			value = transform(value)
		}

		if f.Tag != "" {
			if tag, failed := s.check(value, f.Tag); failed {
				violations = append(violations, Violation{
					Field:     f.Name,
					Tag:       tag,
					MessageID: f.messageFor(tag),
					Value:     value,
				})
				continue
			}
		}

		for _, transform := range f.After {
			value = transform(value)
		}
		values[f.Name] = value
	}

	if len(violations) > 0 {
		return nil, violations
	}
	return values, nil
}

func (s *Schema) check(value any, tag string) (string, bool) {
	err := s.validate.Var(value, tag)
	if err == nil {
		return "", false
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fieldErrs[0].Tag(), true
	}
	return tag, true
}

func (f Field) messageFor(tag string) string {
	if id, ok := f.Messages[tag]; ok {
		return id
	}
	return f.MessageID
}

func isText(fl validator.FieldLevel) bool {
	return fl.Field().Kind() == reflect.String
}

func isBool(fl validator.FieldLevel) bool {
	_, ok := boolValue(fl.Field().Interface())
	return ok
}

func (v Values) String(name string) (string, bool) {
	s, ok := v[name].(string)
	return s, ok
}

func (v Values) Bool(name string) (bool, bool) {
	b, ok := v[name].(bool)
	return b, ok
}
