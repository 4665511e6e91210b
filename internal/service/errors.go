package service

import "fmt"

// NotFoundError is raised when a lookup by id yields no record. It is the
// only expected, client-facing failure; everything else stays opaque and
// surfaces as a generic 500 at the translation point.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id: %d", e.Resource, e.ID)
}
