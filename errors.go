package plot

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrLoad is wrapped by every *LoadError.
	ErrLoad = errors.New("cannot load data")

	// ErrSchema is wrapped by every *SchemaError.
	ErrSchema = errors.New("schema mismatch")

	// ErrParse is wrapped by every *ParseError.
	ErrParse = errors.New("not a number")
)

// LoadError reports an unreachable or malformed data source.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() []error { return []error{ErrLoad, e.Err} }

// SchemaError reports columns required by a chart which are absent
// from the data frame.
type SchemaError struct {
	Frame   string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("data frame %s: missing column(s) %s",
		e.Frame, strings.Join(e.Missing, ", "))
}

func (e *SchemaError) Unwrap() error { return ErrSchema }

// ParseError reports a value in a numeric column which is not a number.
// Row is the zero based record index, not counting the header.
type ParseError struct {
	Frame string
	Field string
	Row   int
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("data frame %s: row %d: field %s: cannot parse %q as number",
		e.Frame, e.Row, e.Field, e.Value)
}

func (e *ParseError) Unwrap() error { return ErrParse }
