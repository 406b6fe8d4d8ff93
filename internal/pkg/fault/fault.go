package fault

import (
	"errors"
	"fmt"
)

// Kind discriminates the failure classes the API surfaces to callers.
type Kind int

const (
	KindUnknown Kind = iota
	KindParse
	KindNotFound
	KindConflict
	KindConfiguration
	KindConnection
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindConfiguration:
		return "configuration"
	case KindConnection:
		return "connection"
	default:
		return "unknown"
	}
}

// Error carries a failure kind alongside the operation and key that failed,
// so every user-visible message can identify what was being done to what.
type Error struct {
	Kind Kind
	Op   string
	Key  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Key != "" && e.Err != nil:
		return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Err)
	case e.Key != "":
		return fmt.Sprintf("%s %s: %s", e.Op, e.Key, e.Kind)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New wraps err with a kind, the failing operation, and the key it failed on.
func New(kind Kind, op, key string, err error) *Error {
	return &Error{Kind: kind, Op: op, Key: key, Err: err}
}

func Parse(op, key string, err error) *Error {
	return New(KindParse, op, key, err)
}

func NotFound(op, key string, err error) *Error {
	return New(KindNotFound, op, key, err)
}

func Conflict(op, key string, err error) *Error {
	return New(KindConflict, op, key, err)
}

func Configuration(op, key string, err error) *Error {
	return New(KindConfiguration, op, key, err)
}

func Connection(op, key string, err error) *Error {
	return New(KindConnection, op, key, err)
}

// KindOf reports the kind of the first *Error in err's chain,
// or KindUnknown when the chain carries no classified failure.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}
