package task

import (
	"fmt"
	"strings"
)

// ErrorCode identifies a validation failure class.
type ErrorCode string

const (
	ErrCodeRequired    ErrorCode = "required"
	ErrCodeTooLong     ErrorCode = "too_long"
	ErrCodeInvalidEnum ErrorCode = "invalid_enum"
)

// ValidationError describes a single invalid field on a task.
type ValidationError struct {
	Field   string
	Value   interface{}
	Code    ErrorCode
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FieldValidator validates one aspect of a task.
type FieldValidator interface {
	ValidateField(task *Task) *ValidationError
}

// ContentValidator validates the task content line.
type ContentValidator struct{}

func (v *ContentValidator) ValidateField(task *Task) *ValidationError {
	content := strings.TrimSpace(task.Content)

	if content == "" {
		return &ValidationError{
			Field:   "content",
			Value:   task.Content,
			Code:    ErrCodeRequired,
			Message: "content is required",
		}
	}

	const maxContentLength = 500
	if len(content) > maxContentLength {
		return &ValidationError{
			Field:   "content",
			Value:   task.Content,
			Code:    ErrCodeTooLong,
			Message: fmt.Sprintf("content exceeds maximum length of %d characters", maxContentLength),
		}
	}

	return nil
}

// PriorityValidator validates the priority range.
type PriorityValidator struct{}

func (v *PriorityValidator) ValidateField(task *Task) *ValidationError {
	if task.Priority >= MinPriority && task.Priority <= MaxPriority {
		return nil
	}

	return &ValidationError{
		Field:   "priority",
		Value:   task.Priority,
		Code:    ErrCodeInvalidEnum,
		Message: fmt.Sprintf("priority must be between %d and %d, got %d", MinPriority, MaxPriority, task.Priority),
	}
}

var validators = []FieldValidator{
	&ContentValidator{},
	&PriorityValidator{},
}

// Validate runs all field validators and returns the collected errors.
// A nil slice means the task is valid.
func Validate(task *Task) []*ValidationError {
	var errs []*ValidationError
	for _, v := range validators {
		if err := v.ValidateField(task); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
