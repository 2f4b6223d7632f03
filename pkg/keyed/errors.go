package keyed

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrInvalidAccessor indicates Call was given a name that is not a
	// recognised verb followed by a key.
	ErrInvalidAccessor = errors.New("invalid accessor")

	// ErrUnsupportedValue indicates ValueOf met Go data with no Value form.
	ErrUnsupportedValue = errors.New("unsupported value")

	// ErrNotMapping indicates a decoded document's root is not a mapping.
	ErrNotMapping = errors.New("document root is not a mapping")
)

// AccessorError describes a failed dispatch.
type AccessorError struct {
	// Name is the call name as given to Call.
	Name string
	// Verb is the verb parsed from the normalised name, empty if none.
	Verb string
}

// Error implements the error interface.
func (e *AccessorError) Error() string {
	if e.Verb == "" {
		return fmt.Sprintf("invalid accessor %q: no verb prefix", e.Name)
	}
	return fmt.Sprintf("invalid accessor %q: unknown verb %q", e.Name, e.Verb)
}

// Unwrap returns ErrInvalidAccessor for errors.Is support.
func (e *AccessorError) Unwrap() error {
	return ErrInvalidAccessor
}

// ValueError reports Go data that ValueOf cannot represent.
type ValueError struct {
	// Path is the dotted location of the value, empty at the root.
	Path string
	// Type describes the offending Go type.
	Type string
}

// Error implements the error interface.
func (e *ValueError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("unsupported value of type %s", e.Type)
	}
	return fmt.Sprintf("unsupported value of type %s at %s", e.Type, e.Path)
}

// Unwrap returns ErrUnsupportedValue for errors.Is support.
func (e *ValueError) Unwrap() error {
	return ErrUnsupportedValue
}
