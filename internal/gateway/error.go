package gateway

import (
	"errors"

	"restaurant-page/internal/pkg/errs"
)

type ErrorKind string

// Gateway-specific error kinds
const (
	KindNotFound   ErrorKind = "NOT_FOUND"
	KindNetwork    ErrorKind = "NETWORK_FAILURE"
	KindValidation ErrorKind = "VALIDATION_REJECTED"
)

type Error struct {
	Kind ErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e Error) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e Error) Unwrap() error {
	return e.err
}

func WrapErr(kind ErrorKind, msg string, err error) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return Error{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind ErrorKind) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
