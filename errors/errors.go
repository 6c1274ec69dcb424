package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseSelect    Phase = "select"    // target environment -> tables
	PhaseConstruct Phase = "construct" // table construction
	PhaseLookup    Phase = "lookup"    // descriptor lookup
	PhaseContext   Phase = "context"   // processing context creation
	PhaseConfig    Phase = "config"    // tool configuration
	PhaseParse     Phase = "parse"     // names and command-line input
)

// Kind categorizes the error
type Kind string

const (
	KindUnsupportedEnvironment Kind = "unsupported_environment"
	KindNotFound               Kind = "not_found"
	KindMalformedTable         Kind = "malformed_table"
	KindInvalidInput           Kind = "invalid_input"
)

// ErrUnsupportedEnvironment matches any unsupported environment error via errors.Is.
var ErrUnsupportedEnvironment = &Error{Phase: PhaseSelect, Kind: KindUnsupportedEnvironment}

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Table  string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Table != "" {
		b.WriteString(" in ")
		b.WriteString(e.Table)
	}

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Table sets the table the error refers to
func (b *Builder) Table(name string) *Builder {
	b.err.Table = name
	return b
}

// Path sets the entry path inside the table
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// UnsupportedEnvironment creates an error for a target with no tables
func UnsupportedEnvironment(target any) *Error {
	return &Error{
		Phase:  PhaseSelect,
		Kind:   KindUnsupportedEnvironment,
		Detail: fmt.Sprintf("no tables for target environment %v", target),
		Value:  target,
	}
}

// MalformedTable creates a table invariant violation error
func MalformedTable(table string, path []string, detail string) *Error {
	return &Error{
		Phase:  PhaseConstruct,
		Kind:   KindMalformedTable,
		Table:  table,
		Path:   path,
		Detail: detail,
	}
}

// DuplicateCode creates a malformed table error for a repeated numeric code
func DuplicateCode(table string, code uint32, first, second string) *Error {
	return &Error{
		Phase:  PhaseConstruct,
		Kind:   KindMalformedTable,
		Table:  table,
		Path:   []string{second},
		Detail: fmt.Sprintf("code %d already used by %q", code, first),
		Value:  code,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// ParseFailed creates a parsing error
func ParseFailed(what string, cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidInput,
		Detail: fmt.Sprintf("parse %s", what),
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
