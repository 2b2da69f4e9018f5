package espflash

import "fmt"

// MalformedStubError reports a stub resource that fails structural parsing.
// For catalog stubs this indicates a packaging defect and is not recoverable.
type MalformedStubError struct {
	Origin string // Chip name for catalog stubs, empty otherwise
	Err    error
}

func (e *MalformedStubError) Error() string {
	return fmt.Sprintf("%s: malformed resource: %s", prefix(e.Origin), e.Err)
}

func (e *MalformedStubError) Unwrap() error {
	return e.Err
}

// EncodingError reports a segment payload that is not valid base64.
type EncodingError struct {
	Origin  string
	Segment string // "text" or "data"
	Err     error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s: decode %s segment: %s", prefix(e.Origin), e.Segment, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// LayoutError reports decoded segments that cannot be loaded as described.
type LayoutError struct {
	Origin string
	Reason string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("%s: invalid layout: %s", prefix(e.Origin), e.Reason)
}

func newLayoutErr(origin string, format string, a ...interface{}) *LayoutError {
	return &LayoutError{
		Origin: origin,
		Reason: fmt.Sprintf(format, a...),
	}
}

func prefix(origin string) string {
	if origin == "" {
		return "flash stub"
	}
	return "flash stub " + origin
}
