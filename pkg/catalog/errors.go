package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound matches any NotFoundError.
	ErrNotFound = errors.New("component not found")

	// ErrInvalidCategory is returned for names outside the category set.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidIndex wraps every index load failure.
	ErrInvalidIndex = errors.New("invalid component index")
)

// NotFoundError reports a lookup of an unknown component.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Component %s not found", e.Name)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
