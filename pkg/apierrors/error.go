package apierrors

import (
	"fmt"

	"todolist/pkg/translator"
)

// JsonErr represents the JSON structure for apierrors.
type JsonErr struct {
	ErrDetails Err `json:"error"`
}

// Err represents the error with a code and message. Fields and Available are
// only set for validation failures.
type Err struct {
	Code      int        `json:"code"`
	Message   string     `json:"message"`
	Fields    []FieldErr `json:"fields,omitempty"`
	Available []string   `json:"available,omitempty"`
}

// FieldErr describes one rejected request field.
type FieldErr struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	// Value is omitted when the field was absent or null.
	Value any `json:"value,omitempty"`
}

// Error implements the error interface for JsonErr.
func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.ErrDetails.Code, e.ErrDetails.Message)
}

// CreateError generates a JsonErr with a translated message.
func CreateError(code int, msgKey string, lang string) JsonErr {
	message := GetTransErrorMsg(msgKey, lang)
	return JsonErr{ErrDetails: Err{Code: code, Message: message}}
}

// CreateValidationError generates a JsonErr carrying per-field details.
func CreateValidationError(code int, msgKey string, fields []FieldErr, lang string) JsonErr {
	jsonErr := CreateError(code, msgKey, lang)
	jsonErr.ErrDetails.Fields = fields
	return jsonErr
}

// CreateOptionsError generates a JsonErr listing the accepted values.
func CreateOptionsError(code int, msgKey string, available []string, lang string) JsonErr {
	jsonErr := CreateError(code, msgKey, lang)
	jsonErr.ErrDetails.Available = available
	return jsonErr
}

// GetTransErrorMsg retrieves the translated error message.
func GetTransErrorMsg(msgKey string, lang string) string {
	return translator.Localize(msgKey, lang, nil)
}

// GetTransErrorMsgWithData retrieves the translated error message, rendering
// data into its template.
func GetTransErrorMsgWithData(msgKey string, lang string, data map[string]any) string {
	return translator.Localize(msgKey, lang, data)
}
