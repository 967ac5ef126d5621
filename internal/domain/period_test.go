package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTaxPeriod(t *testing.T) {
	require.True(t, TaxPeriod_4 > TaxPeriod_3)
	require.True(t, TaxPeriod_3 >= TaxPeriod_3)
	require.Equal(t, "PERIOD_2", TaxPeriod_2.String())
	require.Equal(t, "Tax Period: before 27th Sept 2012", TaxPeriod_1.Label())
	require.Equal(t, "Tax Period: after 1st Jan 2017", TaxPeriod_4.Label())

	var zero TaxPeriod
	require.False(t, zero.IsValid())
	require.Equal(t, "Tax Period: unknown (0)", zero.Label())
	require.Equal(t, "PERIOD_UNKNOWN_0", zero.String())
	require.False(t, TaxPeriod(5).IsValid())
	require.Equal(t, "PERIOD_UNKNOWN_5", TaxPeriod(5).String())
	require.Equal(t, "Tax Period: unknown (5)", TaxPeriod(5).Label())
}

func TestMarginalRate(t *testing.T) {
	tmi := MarginalRate(41)
	require.Equal(t, float64(41), tmi.AsPercent())
	require.Equal(t, "41", tmi.Decimal().String())
	require.Equal(t, "0.172", Ratio(0.172).Decimal().String())
}
