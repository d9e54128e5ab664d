package payroll_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personnel/internal/payroll"
)

func date(s string) time.Time {
	d, err := payroll.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func ruleSet(t *testing.T) payroll.RuleSet {
	t.Helper()

	// deliberately unordered
	rs, err := payroll.NewRuleSet([]payroll.RuleVersion{
		{ID: "v2023", EffectiveFrom: date("2023-01-01"), ResidentRate: dec("0.15"), NonResidentRate: dec("0.30")},
		{ID: "v2020", EffectiveFrom: date("2020-01-01"), ResidentRate: dec("0.13"), NonResidentRate: dec("0.30")},
	})
	require.NoError(t, err)
	return rs
}

func TestResolveRate(t *testing.T) {
	t.Parallel()

	rs := ruleSet(t)

	for _, tt := range []struct {
		name    string
		date    string
		status  payroll.TaxStatus
		wantID  string
		wantFor string
	}{
		{name: "before second version", date: "2022-06-01", status: payroll.TaxStatusResident, wantID: "v2020", wantFor: "0.13"},
		{name: "after second version", date: "2023-06-01", status: payroll.TaxStatusResident, wantID: "v2023", wantFor: "0.15"},
		{name: "on effective date", date: "2023-01-01", status: payroll.TaxStatusResident, wantID: "v2023", wantFor: "0.15"},
		{name: "day before effective date", date: "2022-12-31", status: payroll.TaxStatusResident, wantID: "v2020", wantFor: "0.13"},
		{name: "earliest date", date: "2020-01-01", status: payroll.TaxStatusResident, wantID: "v2020", wantFor: "0.13"},
		{name: "non-resident", date: "2021-03-15", status: payroll.TaxStatusNonResident, wantID: "v2020", wantFor: "0.30"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, rate, err := rs.ResolveRate(date(tt.date), tt.status)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, v.ID)
			assert.True(t, dec(tt.wantFor).Equal(rate), "got %s", rate)
		})
	}
}

func TestResolveIgnoresTimeOfDay(t *testing.T) {
	t.Parallel()

	rs := ruleSet(t)
	late := time.Date(2022, 12, 31, 23, 59, 59, 0, time.UTC)

	v, err := rs.Resolve(late)
	require.NoError(t, err)
	assert.Equal(t, "v2020", v.ID)
}

func TestResolveBeforeEarliestVersion(t *testing.T) {
	t.Parallel()

	_, _, err := ruleSet(t).ResolveRate(date("2019-12-31"), payroll.TaxStatusResident)
	require.ErrorIs(t, err, payroll.ErrNoApplicableRule)

	empty, err := payroll.NewRuleSet(nil)
	require.NoError(t, err)
	_, err = empty.Resolve(date("2024-01-01"))
	require.ErrorIs(t, err, payroll.ErrNoApplicableRule)
}

func TestResolveRateUnknownStatus(t *testing.T) {
	t.Parallel()

	_, _, err := ruleSet(t).ResolveRate(date("2024-01-01"), payroll.TaxStatus("CITIZEN"))
	require.ErrorIs(t, err, payroll.ErrInvalidTaxStatus)
}

func TestNewRuleSetValidation(t *testing.T) {
	t.Parallel()

	_, err := payroll.NewRuleSet([]payroll.RuleVersion{
		{ID: "a", EffectiveFrom: date("2020-01-01"), ResidentRate: dec("0.13"), NonResidentRate: dec("0.3")},
		{ID: "b", EffectiveFrom: date("2020-01-01"), ResidentRate: dec("0.15"), NonResidentRate: dec("0.3")},
	})
	require.ErrorIs(t, err, payroll.ErrDuplicateEffectiveDate)

	_, err = payroll.NewRuleSet([]payroll.RuleVersion{
		{ID: "c", EffectiveFrom: date("2020-01-01"), ResidentRate: dec("1"), NonResidentRate: dec("0.3")},
	})
	require.ErrorIs(t, err, payroll.ErrInvalidRate)
}

func TestRuleSetVersionsAreOrderedCopies(t *testing.T) {
	t.Parallel()

	rs := ruleSet(t)
	vs := rs.Versions()
	require.Len(t, vs, 2)
	assert.Equal(t, "v2020", vs[0].ID)
	assert.Equal(t, "v2023", vs[1].ID)

	vs[0].ID = "mutated"
	assert.Equal(t, "v2020", rs.Versions()[0].ID)
}
