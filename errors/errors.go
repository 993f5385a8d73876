package errors

import (
	"fmt"
)

// QueryError describes a document that could not be parsed.
type QueryError struct {
	Message   string     `json:"message"`
	Locations []Location `json:"locations,omitempty"`
	// Rule is the label of the grammar rule that failed, e.g. "value error".
	Rule string `json:"-"`
	// Offset is the byte offset of the furthest position the parser reached.
	Offset int   `json:"-"`
	Err    error `json:"-"`
}

type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (a Location) Before(b Location) bool {
	return a.Line < b.Line || (a.Line == b.Line && a.Column < b.Column)
}

// Errorf formats a QueryError. Like fmt.Errorf, it wraps the last argument
// when that argument is an error.
func Errorf(format string, a ...interface{}) *QueryError {
	var err error
	if n := len(a); n > 0 {
		if v, ok := a[n-1].(error); ok {
			err = v
		}
	}
	return &QueryError{
		Message: fmt.Sprintf(format, a...),
		Err:     err,
	}
}

func (err *QueryError) Error() string {
	if err == nil {
		return "<nil>"
	}
	str := fmt.Sprintf("graphql: %s", err.Message)
	for _, loc := range err.Locations {
		str += fmt.Sprintf(" (line %d, column %d)", loc.Line, loc.Column)
	}
	return str
}

func (err *QueryError) Unwrap() error {
	if err == nil {
		return nil
	}
	return err.Err
}

var _ error = &QueryError{}
