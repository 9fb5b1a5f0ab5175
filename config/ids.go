package config

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 8
)

// GenerateRandomID generates a short random alphanumeric ID (lowercase)
func GenerateRandomID() string {
	id, err := gonanoid.Generate(idAlphabet, idLength)
	if err != nil {
		// Fallback to a fixed value if nanoid fails
		return "error000"
	}
	return id
}

// NewTaskID returns a fresh task identifier
func NewTaskID() string {
	return "todo-" + GenerateRandomID()
}

// NewProjectID returns a fresh project identifier
func NewProjectID() string {
	return "proj-" + GenerateRandomID()
}

// NewLabelID returns a fresh label identifier
func NewLabelID() string {
	return "lbl-" + GenerateRandomID()
}

// NewFilterID returns a fresh saved-filter identifier
func NewFilterID() string {
	return "flt-" + GenerateRandomID()
}
