package editors

import (
	"errors"
	"fmt"
)

// ErrEditorNotFound is the sentinel matched by errors.Is for resolution
// failures.
var ErrEditorNotFound = errors.New("editor not found")

// NotFoundError reports that neither a dedicated nor a qualifying type
// registration exists for an attribute. It carries the attribute identity for
// diagnostics and indicates a registration gap, never a transient condition.
type NotFoundError struct {
	OwnerType string
	Attribute AttributeDescriptor
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no suitable editor for attribute %s of %s", e.Attribute, e.OwnerType)
}

// Unwrap makes errors.Is(err, ErrEditorNotFound) hold.
func (e *NotFoundError) Unwrap() error { return ErrEditorNotFound }
