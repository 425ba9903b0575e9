package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrKindInvalid       = errors.New("catalog: unknown content kind")
	ErrSlugRequired      = errors.New("catalog: slug is required")
	ErrSlugInvalid       = errors.New("catalog: slug contains invalid characters")
	ErrSlugExists        = errors.New("catalog: slug already exists")
	ErrContentIDRequired = errors.New("catalog: content id required")
	ErrUnknownLanguage   = errors.New("catalog: unknown language")
)

// NotFoundError represents missing records from repository lookups.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}
