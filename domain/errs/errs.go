package errs

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindMissingFile        Kind = "missing_file"
	KindUnsupportedFormat  Kind = "unsupported_format"
	KindSchemaMismatch     Kind = "schema_mismatch"
	KindPersistenceFailure Kind = "persistence_failure"
	KindValidation         Kind = "validation"
	KindNotFound           Kind = "not_found"
	KindInternal           Kind = "internal"
)

// Status maps an error kind to the HTTP status the transports answer with.
func (k Kind) Status() int {
	switch k {
	case KindMissingFile, KindUnsupportedFormat, KindSchemaMismatch, KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is what services hand back to transports. The message is safe to show to clients.
type Error interface {
	error
	Kind() Kind
	Status() int
	Details() map[string]any
	Unwrap() error
}

type ErrorOpts struct {
	Kind    Kind
	Message string
	Details map[string]any
}

type appError struct {
	kind    Kind
	message string
	details map[string]any
	cause   error
}

var _ Error = &appError{}

func New(kind Kind, message string) Error {
	return &appError{kind: kind, message: message}
}

// WrapAppError attaches a kind and an optional client message to err.
// An err that already is an Error keeps its kind unless opts overrides it.
func WrapAppError(err error, opts *ErrorOpts) Error {
	if err == nil {
		return nil
	}
	if opts == nil {
		opts = &ErrorOpts{}
	}

	var existing Error
	if errors.As(err, &existing) && opts.Kind == "" && opts.Message == "" && opts.Details == nil {
		return existing
	}

	kind := opts.Kind
	if kind == "" {
		kind = KindInternal
		if existing != nil {
			kind = existing.Kind()
		}
	}

	return &appError{
		kind:    kind,
		message: opts.Message,
		details: opts.Details,
		cause:   err,
	}
}

func KindOf(err error) Kind {
	var e Error
	if errors.As(err, &e) {
		return e.Kind()
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

func (this *appError) Error() string {
	if this.message != "" {
		return this.message
	}
	if this.cause != nil {
		return this.cause.Error()
	}
	return string(this.kind)
}

func (this *appError) Kind() Kind {
	return this.kind
}

func (this *appError) Status() int {
	return this.kind.Status()
}

func (this *appError) Details() map[string]any {
	return this.details
}

func (this *appError) Unwrap() error {
	return this.cause
}
