package payroll_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personnel/internal/payroll"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNetFromGross(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name  string
		gross string
		rate  string
		want  string
	}{
		{name: "resident 13%", gross: "1000", rate: "0.13", want: "870.00"},
		{name: "non-resident 30%", gross: "1000", rate: "0.30", want: "700.00"},
		{name: "zero gross", gross: "0", rate: "0.13", want: "0"},
		{name: "zero rate", gross: "1234.56", rate: "0", want: "1234.56"},
		{name: "rounds half up", gross: "0.05", rate: "0.1", want: "0.05"},
		{name: "rounds once at the end", gross: "100.005", rate: "0.13", want: "87.00"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := payroll.NetFromGross(dec(tt.gross), dec(tt.rate))
			require.NoError(t, err)
			assert.True(t, dec(tt.want).Equal(got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestNetFromGrossZeroForAnyRate(t *testing.T) {
	t.Parallel()

	for _, r := range []string{"0", "0.13", "0.15", "0.3", "0.9999"} {
		got, err := payroll.NetFromGross(decimal.Zero, dec(r))
		require.NoError(t, err)
		assert.True(t, got.IsZero(), "rate %s", r)
	}
}

func TestNetFromGrossErrors(t *testing.T) {
	t.Parallel()

	_, err := payroll.NetFromGross(dec("-5"), dec("0.13"))
	require.ErrorIs(t, err, payroll.ErrInvalidAmount)

	_, err = payroll.NetFromGross(dec("100"), dec("1"))
	require.ErrorIs(t, err, payroll.ErrInvalidRate)

	_, err = payroll.NetFromGross(dec("100"), dec("-0.01"))
	require.ErrorIs(t, err, payroll.ErrInvalidRate)
}

func TestGrossFromNet(t *testing.T) {
	t.Parallel()

	got, err := payroll.GrossFromNet(dec("870"), dec("0.13"))
	require.NoError(t, err)
	assert.True(t, got.Sub(dec("1000")).Abs().LessThanOrEqual(dec("0.01")), "got %s", got)

	got, err = payroll.GrossFromNet(dec("700"), dec("0.30"))
	require.NoError(t, err)
	assert.Equal(t, "1000.00", got.StringFixed(2))

	got, err = payroll.GrossFromNet(dec("100"), dec("0.15"))
	require.NoError(t, err)
	assert.Equal(t, "117.65", got.StringFixed(2))
}

func TestGrossFromNetErrors(t *testing.T) {
	t.Parallel()

	_, err := payroll.GrossFromNet(dec("100"), dec("1.0"))
	require.ErrorIs(t, err, payroll.ErrDivisionUndefined)

	_, err = payroll.GrossFromNet(dec("-1"), dec("0.13"))
	require.ErrorIs(t, err, payroll.ErrInvalidAmount)

	_, err = payroll.GrossFromNet(dec("100"), dec("1.5"))
	require.ErrorIs(t, err, payroll.ErrInvalidRate)

	_, err = payroll.GrossFromNet(dec("100"), dec("-0.5"))
	require.ErrorIs(t, err, payroll.ErrInvalidRate)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	grosses := []string{"0", "0.01", "1", "99.99", "1000", "1234.56", "55555.55", "1000000.01"}
	rates := []string{"0", "0.13", "0.15", "0.3", "0.5", "0.87"}

	for _, g := range grosses {
		for _, r := range rates {
			gross, rate := dec(g), dec(r)

			net, err := payroll.NetFromGross(gross, rate)
			require.NoError(t, err)
			back, err := payroll.GrossFromNet(net, rate)
			require.NoError(t, err)

			// net is off by at most half a cent, which the division scales by 1/(1-rate)
			tolerance := dec("0.005").Div(decimal.NewFromInt(1).Sub(rate)).Add(dec("0.005"))
			assert.True(t, back.Sub(gross).Abs().LessThanOrEqual(tolerance),
				"gross %s rate %s: round trip gave %s", g, r, back)
		}
	}
}

func TestConvert(t *testing.T) {
	t.Parallel()

	res, err := payroll.Convert(dec("1000"), payroll.DirectionGrossToNet, dec("0.13"))
	require.NoError(t, err)
	assert.Equal(t, "870.00", res.Value(payroll.DirectionGrossToNet).StringFixed(2))
	assert.Equal(t, "1000.00", res.Gross.StringFixed(2))
	assert.Equal(t, "130.00", res.Withheld.StringFixed(2))
	assert.True(t, dec("0.13").Equal(res.RateApplied))

	res, err = payroll.Convert(dec("700"), payroll.DirectionNetToGross, dec("0.3"))
	require.NoError(t, err)
	assert.Equal(t, "1000.00", res.Value(payroll.DirectionNetToGross).StringFixed(2))
	assert.Equal(t, "300.00", res.Withheld.StringFixed(2))

	_, err = payroll.Convert(dec("1"), payroll.Direction("sideways"), dec("0.1"))
	require.ErrorIs(t, err, payroll.ErrInvalidDirection)
}
