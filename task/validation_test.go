package task

import (
	"strings"
	"testing"
)

func TestContentValidator(t *testing.T) {
	tests := []struct {
		name    string
		task    *Task
		wantErr bool
		errCode ErrorCode
	}{
		{
			name:    "valid content",
			task:    &Task{Content: "Buy groceries"},
			wantErr: false,
		},
		{
			name:    "empty content",
			task:    &Task{Content: ""},
			wantErr: true,
			errCode: ErrCodeRequired,
		},
		{
			name:    "whitespace content",
			task:    &Task{Content: "   "},
			wantErr: true,
			errCode: ErrCodeRequired,
		},
		{
			name:    "very long content",
			task:    &Task{Content: strings.Repeat("a", 501)},
			wantErr: true,
			errCode: ErrCodeTooLong,
		},
		{
			name:    "max length content",
			task:    &Task{Content: strings.Repeat("a", 500)},
			wantErr: false,
		},
	}

	v := &ContentValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateField(tt.task)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if err.Code != tt.errCode {
					t.Errorf("expected code %s, got %s", tt.errCode, err.Code)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestPriorityValidator(t *testing.T) {
	tests := []struct {
		name     string
		priority int
		wantErr  bool
	}{
		{name: "urgent", priority: 1, wantErr: false},
		{name: "low", priority: 4, wantErr: false},
		{name: "zero", priority: 0, wantErr: true},
		{name: "too high", priority: 5, wantErr: true},
		{name: "negative", priority: -1, wantErr: true},
	}

	v := &PriorityValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateField(&Task{Priority: tt.priority})
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	errs := Validate(&Task{Content: "", Priority: 9})
	if len(errs) != 2 {
		t.Fatalf("expected 2 validation errors, got %d", len(errs))
	}

	errs = Validate(&Task{Content: "ok", Priority: 2})
	if errs != nil {
		t.Errorf("expected no errors, got %v", errs)
	}
}
