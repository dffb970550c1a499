package runconfig

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is matched by errors.Is for any *ParseError.
	ErrParse = errors.New("configuration document is not well-formed")

	// ErrSchema is matched by errors.Is for any *SchemaError.
	ErrSchema = errors.New("configuration document has the wrong shape")

	errEmptyDocument = errors.New("document is empty")
)

// ParseError means the document could not be parsed as JSON or YAML at all.
type ParseError struct {
	// Format is "JSON" or "YAML", whichever the document was read as.
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed %s configuration: %s", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// SchemaError means the document was well-formed but a property had the wrong shape.
type SchemaError struct {
	// Key is the top-level property that was wrong, or "" if the document itself was not an object.
	Key string

	// Expected and Actual describe the kinds of value involved, such as "boolean" and "string".
	// Actual is empty for errors that are not about a value's kind.
	Expected string
	Actual   string

	// Message is used instead of Expected/Actual for other problems, such as a duplicate key.
	Message string

	// Offset is the byte offset of the offending value in the JSON form of the document, or -1
	// if unknown.
	Offset int
}

func (e *SchemaError) Error() string {
	where := "configuration document"
	if e.Key != "" {
		where = fmt.Sprintf("configuration property %q", e.Key)
	}
	var what string
	if e.Message != "" {
		what = e.Message
	} else {
		what = "expected " + e.Expected
		if e.Actual != "" {
			what += ", got " + e.Actual
		}
	}
	if e.Offset >= 0 {
		return fmt.Sprintf("%s: %s (at offset %d)", where, what, e.Offset)
	}
	return fmt.Sprintf("%s: %s", where, what)
}

func (e *SchemaError) Is(target error) bool { return target == ErrSchema }
