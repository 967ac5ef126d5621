package service

import (
	"context"
	"errors"
	rsutax_errors "rsutax/internal"
	"rsutax/internal/config"
	"rsutax/internal/domain"
	"rsutax/internal/logger"
	"rsutax/internal/util"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func exampleGrant() domain.Grant {
	return domain.Grant{
		Quantity:      1000,
		GrantDate:     util.NewDate(2013, 6, 10),
		VestUnitValue: 20,
		SellDate:      util.NewDate(2017, 9, 10),
		SellUnitValue: 50,
	}
}

func TestBuildTaxReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	calc := NewMockCalculator(ctrl)
	tmi := domain.MarginalRate(41)

	calc.EXPECT().TaxPeriod().Return(domain.TaxPeriod_2)
	calc.EXPECT().HoldingDays().Return(1553)
	calc.EXPECT().TotalVestingValue().Return(float64(20000))
	calc.EXPECT().TotalSellingValue().Return(float64(50000))
	calc.EXPECT().SellGain().Return(float64(30000))
	calc.EXPECT().GainLossTax().Return(float64(9000))
	calc.EXPECT().EmployeeContributionTax().Return(float64(2000))
	calc.EXPECT().SocialTax(tmi).Return(1382.4)
	calc.EXPECT().VestingTaxBase(tmi).Return(float64(8200))
	calc.EXPECT().VestingTaxTotal(tmi).Return(11582.4)
	calc.EXPECT().TotalTax(tmi).Return(20582.4)

	report := BuildTaxReport(exampleGrant(), calc, tmi)

	require.Equal(
		t,
		"",
		cmp.Diff(
			domain.TaxReport{
				Grant:                   exampleGrant(),
				TaxPeriod:               domain.TaxPeriod_2,
				Tmi:                     41,
				HoldingDays:             1553,
				VestTotal:               20000,
				SellTotal:               50000,
				SellGain:                30000,
				GainLossTax:             9000,
				EmployeeContributionTax: 2000,
				SocialTax:               1382.4,
				VestingTaxBase:          8200,
				VestingTaxTotal:         11582.4,
				TotalTax:                20582.4,
			},
			report,
		),
	)
}

func TestTaxService_ComputeTaxReport(t *testing.T) {
	ctx := context.Background()
	s := NewTaxService(config.DefaultRateTable(), logger.NewNopLogger())

	t.Run("reference grant", func(t *testing.T) {
		report, err := s.ComputeTaxReport(ctx, exampleGrant(), 41)
		require.NoError(t, err)
		require.Equal(t, domain.TaxPeriod_2, report.TaxPeriod)
		require.Equal(t, domain.EUR(11582.4), report.VestingTaxTotal)
		require.Equal(t, domain.EUR(9000), report.GainLossTax)
		require.Equal(t, domain.EUR(8200), report.VestingTaxBase)
		require.Equal(t, domain.EUR(2000), report.EmployeeContributionTax)
		require.Equal(t, domain.EUR(1382.4), report.SocialTax)
		require.Equal(t, 1553, report.HoldingDays)
	})

	t.Run("invalid grant", func(t *testing.T) {
		g := exampleGrant()
		g.Quantity = -5
		_, err := s.ComputeTaxReport(ctx, g, 41)
		require.True(t, errors.As(err, &rsutax_errors.ErrInvalidGrantInput{}), err)
	})

	t.Run("marginal rate out of range", func(t *testing.T) {
		_, err := s.ComputeTaxReport(ctx, exampleGrant(), 141)
		require.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := s.ComputeTaxReport(cancelled, exampleGrant(), 41)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestTaxService_usesRateTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	calc := NewMockCalculator(ctrl)
	calc.EXPECT().TaxPeriod().Return(domain.TaxPeriod_3).AnyTimes()
	calc.EXPECT().HoldingDays().Return(10).AnyTimes()
	calc.EXPECT().TotalVestingValue().Return(float64(1))
	calc.EXPECT().TotalSellingValue().Return(float64(1))
	calc.EXPECT().SellGain().Return(float64(0))
	calc.EXPECT().GainLossTax().Return(float64(0))
	calc.EXPECT().EmployeeContributionTax().Return(float64(0))
	calc.EXPECT().SocialTax(gomock.Any()).Return(float64(0))
	calc.EXPECT().VestingTaxBase(gomock.Any()).Return(float64(0))
	calc.EXPECT().VestingTaxTotal(gomock.Any()).Return(float64(0))
	calc.EXPECT().TotalTax(gomock.Any()).Return(float64(0))

	rates := config.DefaultRateTable()
	rates.LegacyPeriod3Dispatch = true

	var gotRates config.RateTable
	s := taxServiceHandler{
		Rates:  rates,
		Logger: logger.NewNopLogger(),
		newCalculator: func(g domain.Grant, r config.RateTable) (Calculator, error) {
			gotRates = r
			return calc, nil
		},
	}

	_, err := s.ComputeTaxReport(context.Background(), exampleGrant(), 30)
	require.NoError(t, err)
	require.True(t, gotRates.LegacyPeriod3Dispatch)
}
