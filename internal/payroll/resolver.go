package payroll

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// RuleSet is an immutable, date-ordered snapshot of the rule versions of one jurisdiction.
// It is safe for concurrent use.
type RuleSet struct {
	versions []RuleVersion
}

// NewRuleSet validates versions and returns them as a snapshot sorted by effective date.
// The input slice is not modified.
func NewRuleSet(versions []RuleVersion) (RuleSet, error) {
	sorted := make([]RuleVersion, len(versions))
	for i, v := range versions {
		if err := ValidateRate(v.ResidentRate); err != nil {
			return RuleSet{}, fmt.Errorf("rule version %s resident rate: %w", v.ID, err)
		}
		if err := ValidateRate(v.NonResidentRate); err != nil {
			return RuleSet{}, fmt.Errorf("rule version %s non-resident rate: %w", v.ID, err)
		}
		v.EffectiveFrom = Day(v.EffectiveFrom)
		sorted[i] = v
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EffectiveFrom.Before(sorted[j].EffectiveFrom)
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].EffectiveFrom.Equal(sorted[i-1].EffectiveFrom) {
			return RuleSet{}, fmt.Errorf("%w: %s", ErrDuplicateEffectiveDate, sorted[i].EffectiveFrom.Format(DateLayout))
		}
	}

	return RuleSet{versions: sorted}, nil
}

// Len returns the number of versions in the snapshot.
func (s RuleSet) Len() int {
	return len(s.versions)
}

// Versions returns a copy of the ordered versions.
func (s RuleSet) Versions() []RuleVersion {
	out := make([]RuleVersion, len(s.versions))
	copy(out, s.versions)
	return out
}

// Resolve returns the version with the latest effective date not after date.
func (s RuleSet) Resolve(date time.Time) (RuleVersion, error) {
	day := Day(date)

	// first version strictly after day
	idx := sort.Search(len(s.versions), func(i int) bool {
		return s.versions[i].EffectiveFrom.After(day)
	})
	if idx == 0 {
		return RuleVersion{}, fmt.Errorf("%w: %s", ErrNoApplicableRule, day.Format(DateLayout))
	}

	return s.versions[idx-1], nil
}

// ResolveRate returns the applicable rate for status on date together with the version it came from.
func (s RuleSet) ResolveRate(date time.Time, status TaxStatus) (RuleVersion, decimal.Decimal, error) {
	if !status.Valid() {
		return RuleVersion{}, decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidTaxStatus, status)
	}

	v, err := s.Resolve(date)
	if err != nil {
		return RuleVersion{}, decimal.Zero, err
	}

	r, err := v.RateFor(status)
	if err != nil {
		return RuleVersion{}, decimal.Zero, err
	}

	return v, r, nil
}
