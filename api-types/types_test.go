package types

import (
	"encoding/json"
	"rsutax/internal/domain"
	"rsutax/internal/util"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTaxReportResponse(t *testing.T) {
	report := domain.TaxReport{
		Grant: domain.Grant{
			Quantity:      1000,
			GrantDate:     util.NewDate(2015, 9, 10),
			VestUnitValue: 20,
			SellDate:      util.NewDate(2019, 1, 10),
			SellUnitValue: 50,
		},
		TaxPeriod:       domain.TaxPeriod_3,
		Tmi:             41,
		VestTotal:       20000,
		GainLossTax:     9000,
		VestingTaxTotal: 7540,
		TotalTax:        16540,
	}

	resp := NewTaxReportResponse(report)
	require.Equal(t, "2015-09-10", resp.Grant.GrantDate)
	require.Equal(t, "PERIOD_3", resp.TaxPeriod)
	require.Equal(t, "Tax Period: between 8th Aug 2015 and 31st Dec 2016", resp.TaxPeriodLabel)
	require.Equal(t, float64(16540), resp.Taxes.TotalTax)

	bytes, err := json.Marshal(resp)
	require.NoError(t, err)
	require.Contains(t, string(bytes), `"vestingTaxTotal":7540`)
	require.Contains(t, string(bytes), `"sellDate":"2019-01-10"`)
}
