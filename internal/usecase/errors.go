package usecase

import (
	"errors"
	"fmt"
)

// Error classes. Every sentinel below wraps exactly one of them so transport adapters can
// map whole families (validation -> 400, not found -> 404, ...) while tests still match the
// specific sentinel with errors.Is.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrForbidden  = errors.New("forbidden")
)

func validationErr(msg string) error { return fmt.Errorf("%w: %s", ErrValidation, msg) }
func notFoundErr(msg string) error   { return fmt.Errorf("%w: %s", ErrNotFound, msg) }
func conflictErr(msg string) error   { return fmt.Errorf("%w: %s", ErrConflict, msg) }
func forbiddenErr(msg string) error  { return fmt.Errorf("%w: %s", ErrForbidden, msg) }

var (
	ErrInvalidWorkOrderID      = validationErr("invalid work_order_id")
	ErrWorkOrderNotFound       = notFoundErr("work order not found")
	ErrWorkOrderCancelled      = conflictErr("work order is cancelled")
	ErrInvalidStatusTransition = conflictErr("status transition not allowed")
	ErrRoleNotAllowed          = forbiddenErr("role not allowed to perform this action")
)
