package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers can decide whether to degrade or abort
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindConfig       Kind = "config"
	KindIO           Kind = "io"
	KindEmbedding    Kind = "embedding"
	KindTrends       Kind = "trends"
	KindLLM          Kind = "llm"
	KindInvalidInput Kind = "invalid_input"
	KindNotFound     Kind = "not_found"
)

// Error is a typed failure carrying the operation that produced it
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// New wraps err with a kind and operation name
func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Newf builds an Error from a formatted message
func Newf(kind Kind, op, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s error", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first *Error in err's chain
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is reports whether err carries the given kind
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
