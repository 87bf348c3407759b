package records

import "fmt"

// ResourceReadError reports that the users resource could not be read from
// its storage.
type ResourceReadError struct {
	Resource string
	Err      error
}

func (e *ResourceReadError) Error() string {
	return fmt.Sprintf("reading resource %q: %v", e.Resource, e.Err)
}

func (e *ResourceReadError) Unwrap() error { return e.Err }

// ParseError reports that the users resource was read but is not valid JSON
// of the expected shape.
type ParseError struct {
	Resource string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing resource %q: %v", e.Resource, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
