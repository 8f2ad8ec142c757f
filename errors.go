package ico2svg

import "fmt"

// ParseError reports a malformed icon header or frame catalog.
//
// The underlying error (if any) can be accessed via errors.Unwrap.
type ParseError struct {
	Msg   string
	cause error
}

func (e *ParseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("ico: %s: %v", e.Msg, e.cause)
	}
	return "ico: " + e.Msg
}

func (e *ParseError) Unwrap() error { return e.cause }

// SelectionError is returned when no frame can be selected from the catalog.
type SelectionError struct {
	Msg string
}

func (e *SelectionError) Error() string { return "select: " + e.Msg }

// DecodeError reports a frame payload which could not be decoded into a bitmap.
//
// The underlying error (if any) can be accessed via errors.Unwrap.
type DecodeError struct {
	Frame int
	cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode: frame #%d: %v", e.Frame, e.cause)
}

func (e *DecodeError) Unwrap() error { return e.cause }

// ValidationError reports an out of range or malformed conversion option.
type ValidationError struct {
	Option string
	Msg    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Option, e.Msg)
}
