package service

import (
	"context"
	"fmt"
	"rsutax/internal/config"
	"rsutax/internal/domain"
	"rsutax/internal/logger"
	"rsutax/internal/tax"
	"rsutax/internal/util"
)

//go:generate mockgen -destination=mock_calculator.go -package=service -self_package=rsutax/internal/service rsutax/internal/service Calculator

// Calculator is the query surface of tax.RsuTaxCalculator
type Calculator interface {
	TaxPeriod() domain.TaxPeriod
	HoldingDays() int
	TotalVestingValue() float64
	TotalSellingValue() float64
	SellGain() float64
	GainLossTax() float64
	EmployeeContributionTax() float64
	SocialTax(tmi domain.MarginalRate) float64
	VestingTaxBase(tmi domain.MarginalRate) float64
	VestingTaxTotal(tmi domain.MarginalRate) float64
	TotalTax(tmi domain.MarginalRate) float64
}

type TaxService interface {
	ComputeTaxReport(ctx context.Context, grant domain.Grant, tmi domain.MarginalRate) (*domain.TaxReport, error)
}

type taxServiceHandler struct {
	Rates  config.RateTable
	Logger logger.Logger

	newCalculator func(domain.Grant, config.RateTable) (Calculator, error)
}

func NewTaxService(rates config.RateTable, l logger.Logger) TaxService {
	return taxServiceHandler{
		Rates:  rates,
		Logger: l,
		newCalculator: func(g domain.Grant, r config.RateTable) (Calculator, error) {
			return tax.NewRsuTaxCalculator(g, r)
		},
	}
}

func (h taxServiceHandler) ComputeTaxReport(ctx context.Context, grant domain.Grant, tmi domain.MarginalRate) (*domain.TaxReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if tmi < 0 || tmi > 100 {
		return nil, fmt.Errorf("marginal tax rate must be between 0 and 100, got %v", tmi.AsPercent())
	}

	log := h.Logger.With(
		"grantDate", grant.GrantDate.Format(util.DateLayout),
		"sellDate", grant.SellDate.Format(util.DateLayout),
		"quantity", grant.Quantity,
	)

	calc, err := h.newCalculator(grant, h.Rates)
	if err != nil {
		return nil, fmt.Errorf("failed to compute taxes for grant: %w", err)
	}
	log.Debugf("grant classified as %s, held %d days", calc.TaxPeriod(), calc.HoldingDays())
	if calc.TaxPeriod() == domain.TaxPeriod_3 && h.Rates.LegacyPeriod3Dispatch {
		log.Warnf("period 3 grant computed with the legacy period 4 dispatch")
	}

	report := BuildTaxReport(grant, calc, tmi)
	log.Infof("total tax %.2f (vesting %.2f, gain/loss %.2f)", report.TotalTax, report.VestingTaxTotal, report.GainLossTax)

	return &report, nil
}

// BuildTaxReport reads every component out of an
// already built calculator
func BuildTaxReport(grant domain.Grant, calc Calculator, tmi domain.MarginalRate) domain.TaxReport {
	return domain.TaxReport{
		Grant:       grant,
		TaxPeriod:   calc.TaxPeriod(),
		Tmi:         tmi,
		HoldingDays: calc.HoldingDays(),

		VestTotal: domain.EUR(calc.TotalVestingValue()),
		SellTotal: domain.EUR(calc.TotalSellingValue()),
		SellGain:  domain.EUR(calc.SellGain()),

		GainLossTax:             domain.EUR(calc.GainLossTax()),
		EmployeeContributionTax: domain.EUR(calc.EmployeeContributionTax()),
		SocialTax:               domain.EUR(calc.SocialTax(tmi)),
		VestingTaxBase:          domain.EUR(calc.VestingTaxBase(tmi)),
		VestingTaxTotal:         domain.EUR(calc.VestingTaxTotal(tmi)),
		TotalTax:                domain.EUR(calc.TotalTax(tmi)),
	}
}
