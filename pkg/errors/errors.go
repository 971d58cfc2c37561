// ================== pkg/errors/errors.go =================
package errors

import "errors"

var (
	ErrNotFound    = errors.New("resource not found")
	ErrBadRequest  = errors.New("bad request")
	ErrInternal    = errors.New("internal server error")
	ErrValidation  = errors.New("validation failed")
	ErrUnavailable = errors.New("store unavailable")
)
