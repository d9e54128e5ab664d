package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrRuleVersionInUse    = errors.New("rule version is referenced by payroll calculations")
	ErrRuleVersionConflict = errors.New("a rule version with this effective date already exists")
	ErrRuleVersionChanged  = errors.New("the rule version changed while the calculation was in progress")
	ErrUnauthenticated     = errors.New("invalid credentials")
	ErrEmailTaken          = errors.New("email is already in use")
	ErrUserExists          = errors.New("user already exists")

	errCacheDisabled = errors.New("cache disabled")
)

// LineError ties a failure to a 1-based line of a batch request.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }

func (e *LineError) Unwrap() error { return e.Err }
