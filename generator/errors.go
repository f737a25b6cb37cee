package generator

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, one per failure kind. A *GeneratorError matches its kind
// through errors.Is.
var (
	ErrUnsupportedFeature   = errors.New("drizzlegen: unsupported feature")
	ErrUnknownDialect       = errors.New("drizzlegen: unknown dialect")
	ErrSchemaLookup         = errors.New("drizzlegen: schema lookup failure")
	ErrUnknownCascadeAction = errors.New("drizzlegen: unknown cascade action")
)

type ErrorKind int

const (
	UnsupportedFeature ErrorKind = iota
	UnknownDialect
	SchemaLookupFailure
	UnknownCascadeAction
)

func (k ErrorKind) sentinel() error {
	switch k {
	case UnsupportedFeature:
		return ErrUnsupportedFeature
	case UnknownDialect:
		return ErrUnknownDialect
	case SchemaLookupFailure:
		return ErrSchemaLookup
	default:
		return ErrUnknownCascadeAction
	}
}

// GeneratorError aborts a generation run. No output is produced when one is returned.
type GeneratorError struct {
	Kind    ErrorKind
	Model   string
	Field   string
	Message string
	Cause   error
}

func (e *GeneratorError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.sentinel().Error())
	if e.Model != "" {
		b.WriteString(" on model ")
		b.WriteString(e.Model)
	}
	if e.Field != "" {
		b.WriteString(" field ")
		b.WriteString(e.Field)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *GeneratorError) Unwrap() error {
	return e.Cause
}

func (e *GeneratorError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// IsGeneratorError reports whether err carries a *GeneratorError.
func IsGeneratorError(err error) bool {
	var e *GeneratorError
	return errors.As(err, &e)
}

func newError(kind ErrorKind, model, field, format string, args ...any) *GeneratorError {
	return &GeneratorError{
		Kind:    kind,
		Model:   model,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

func lookupError(model, field string, cause error, format string, args ...any) *GeneratorError {
	err := newError(SchemaLookupFailure, model, field, format, args...)
	err.Cause = cause
	return err
}
