package models

import "fmt"

// ValidationError is the only error whose detail is returned to the caller.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Missing required field: %s", e.Field)
}
