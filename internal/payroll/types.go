package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxStatus selects which withholding rate of a rule version applies.
type TaxStatus string

const (
	TaxStatusResident    TaxStatus = "RESIDENT"
	TaxStatusNonResident TaxStatus = "NON_RESIDENT"
)

func (s TaxStatus) Valid() bool {
	return s == TaxStatusResident || s == TaxStatusNonResident
}

// Direction of a conversion.
type Direction string

const (
	DirectionGrossToNet Direction = "grossToNet"
	DirectionNetToGross Direction = "netToGross"
)

func (d Direction) Valid() bool {
	return d == DirectionGrossToNet || d == DirectionNetToGross
}

// DateLayout is the ISO-8601 calendar date format used on the wire.
const DateLayout = "2006-01-02"

// CurrencyPlaces is the precision results are rounded to.
const CurrencyPlaces = 2

// RuleVersion is a dated snapshot of withholding rates, effective until superseded.
type RuleVersion struct {
	ID              string
	EffectiveFrom   time.Time
	ResidentRate    decimal.Decimal
	NonResidentRate decimal.Decimal
}

// RateFor returns the rate of the version for the given tax status.
func (v RuleVersion) RateFor(status TaxStatus) (decimal.Decimal, error) {
	switch status {
	case TaxStatusResident:
		return v.ResidentRate, nil
	case TaxStatusNonResident:
		return v.NonResidentRate, nil
	default:
		return decimal.Zero, ErrInvalidTaxStatus
	}
}

// Result is the outcome of one conversion. Gross and Net are both filled whatever the direction.
type Result struct {
	Gross       decimal.Decimal
	Net         decimal.Decimal
	Withheld    decimal.Decimal
	RateApplied decimal.Decimal
}

// Value returns the counterpart amount for the direction of the conversion.
func (r Result) Value(d Direction) decimal.Decimal {
	if d == DirectionNetToGross {
		return r.Gross
	}
	return r.Net
}

// Day truncates t to a UTC calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}
