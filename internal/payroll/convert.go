package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// ValidateRate reports ErrInvalidRate unless 0 <= r < 1.
func ValidateRate(r decimal.Decimal) error {
	if r.IsNegative() || r.GreaterThanOrEqual(one) {
		return fmt.Errorf("%w: %s", ErrInvalidRate, r.String())
	}
	return nil
}

// round applies the currency rounding policy: half-up to two places.
// Amounts are never negative here, so Round (half away from zero) is half-up.
func round(d decimal.Decimal) decimal.Decimal {
	return d.Round(CurrencyPlaces)
}

// NetFromGross computes gross - gross*rate.
func NetFromGross(gross, rate decimal.Decimal) (decimal.Decimal, error) {
	if gross.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: gross %s", ErrInvalidAmount, gross.String())
	}
	if err := ValidateRate(rate); err != nil {
		return decimal.Zero, err
	}

	return round(gross.Sub(gross.Mul(rate))), nil
}

// GrossFromNet computes net / (1 - rate).
func GrossFromNet(net, rate decimal.Decimal) (decimal.Decimal, error) {
	if rate.Equal(one) {
		return decimal.Zero, ErrDivisionUndefined
	}
	if net.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: net %s", ErrInvalidAmount, net.String())
	}
	if err := ValidateRate(rate); err != nil {
		return decimal.Zero, err
	}

	return round(net.Div(one.Sub(rate))), nil
}

// Convert runs the conversion in direction and fills both sides of the result.
// The counterpart of the input is the only value that is computed; the input is
// rounded to currency precision as given.
func Convert(amount decimal.Decimal, direction Direction, rate decimal.Decimal) (Result, error) {
	switch direction {
	case DirectionGrossToNet:
		net, err := NetFromGross(amount, rate)
		if err != nil {
			return Result{}, err
		}
		gross := round(amount)
		return Result{Gross: gross, Net: net, Withheld: gross.Sub(net), RateApplied: rate}, nil
	case DirectionNetToGross:
		gross, err := GrossFromNet(amount, rate)
		if err != nil {
			return Result{}, err
		}
		net := round(amount)
		return Result{Gross: gross, Net: net, Withheld: gross.Sub(net), RateApplied: rate}, nil
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidDirection, direction)
	}
}
