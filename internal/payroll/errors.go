package payroll

import "errors"

var (
	ErrNoApplicableRule       = errors.New("no payroll rule version covers the requested date")
	ErrInvalidAmount          = errors.New("amount must not be negative")
	ErrInvalidRate            = errors.New("rate must be within [0, 1)")
	ErrDivisionUndefined      = errors.New("gross is undefined for a 100% withholding rate")
	ErrInvalidTaxStatus       = errors.New("unknown tax status")
	ErrInvalidDirection       = errors.New("unknown conversion direction")
	ErrDuplicateEffectiveDate = errors.New("two rule versions share the same effective date")
)
