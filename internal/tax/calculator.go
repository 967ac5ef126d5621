package tax

import (
	"fmt"
	"rsutax/internal/config"
	"rsutax/internal/domain"
	"rsutax/internal/util"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// RsuTaxCalculator computes the French taxes owed on one
// RSU grant. Totals and the tax period are derived once
// in NewRsuTaxCalculator; every query after that is a
// pure function of them and the marginal rate passed in.
type RsuTaxCalculator struct {
	rates config.RateTable

	vestTotal   decimal.Decimal
	sellTotal   decimal.Decimal
	sellGain    decimal.Decimal
	taxPeriod   domain.TaxPeriod
	holdingDays int
}

func NewRsuTaxCalculator(grant domain.Grant, rates config.RateTable) (*RsuTaxCalculator, error) {
	if err := ValidateGrant(grant); err != nil {
		return nil, err
	}
	if err := rates.Validate(); err != nil {
		return nil, fmt.Errorf("cannot build calculator: %w", err)
	}

	quantity := decimal.NewFromInt(grant.Quantity)
	vestTotal := quantity.Mul(grant.VestUnitValue.Decimal())
	sellTotal := quantity.Mul(grant.SellUnitValue.Decimal())
	sellGain := sellTotal.Sub(vestTotal)

	// sold at a loss: the whole sale is taxed as
	// acquisition gain and there is no capital gain
	if sellGain.IsNegative() {
		vestTotal = sellTotal
		sellGain = decimal.Zero
	}

	return &RsuTaxCalculator{
		rates:       rates,
		vestTotal:   vestTotal,
		sellTotal:   sellTotal,
		sellGain:    sellGain,
		taxPeriod:   ClassifyTaxPeriod(grant.GrantDate, rates.Cutoffs),
		holdingDays: util.DaysBetween(grant.GrantDate, grant.SellDate),
	}, nil
}

func (c RsuTaxCalculator) TaxPeriod() domain.TaxPeriod {
	return c.taxPeriod
}

func (c RsuTaxCalculator) TaxPeriodLabel() string {
	return c.taxPeriod.Label()
}

// HoldingDays is the number of calendar days between
// grant and sale
func (c RsuTaxCalculator) HoldingDays() int {
	return c.holdingDays
}

func (c RsuTaxCalculator) TotalVestingValue() float64 {
	return c.vestTotal.InexactFloat64()
}

func (c RsuTaxCalculator) TotalSellingValue() float64 {
	return c.sellTotal.InexactFloat64()
}

func (c RsuTaxCalculator) SellGain() float64 {
	return c.sellGain.InexactFloat64()
}

// GainLossTax is the flat tax on the sell - vest gain
// (plus-values de cession)
func (c RsuTaxCalculator) GainLossTax() float64 {
	return c.gainLossTax().InexactFloat64()
}

// EmployeeContributionTax (contribution salariale). from
// period 3 on, it is only due above the vest gain cutoff
func (c RsuTaxCalculator) EmployeeContributionTax() float64 {
	return c.employeeContributionTax().InexactFloat64()
}

// SocialTax (prelevements sociaux)
func (c RsuTaxCalculator) SocialTax(tmi domain.MarginalRate) float64 {
	return c.socialTax(tmi).InexactFloat64()
}

// VestingTaxBase is the income tax on the acquisition gain,
// before social taxes and employee contribution
func (c RsuTaxCalculator) VestingTaxBase(tmi domain.MarginalRate) float64 {
	return c.vestingTaxBase(tmi).InexactFloat64()
}

func (c RsuTaxCalculator) VestingTaxTotal(tmi domain.MarginalRate) float64 {
	return c.vestingTaxTotal(tmi).InexactFloat64()
}

func (c RsuTaxCalculator) TotalTax(tmi domain.MarginalRate) float64 {
	return c.gainLossTax().Add(c.vestingTaxTotal(tmi)).InexactFloat64()
}

func (c RsuTaxCalculator) gainLossTax() decimal.Decimal {
	return c.sellGain.Mul(c.rates.GainTax.Decimal())
}

func (c RsuTaxCalculator) belowVestGainCutoff() bool {
	return c.vestTotal.LessThan(c.rates.VestGainCutoff.Decimal())
}

func (c RsuTaxCalculator) employeeContributionTax() decimal.Decimal {
	if c.taxPeriod >= domain.TaxPeriod_3 && c.belowVestGainCutoff() {
		return decimal.Zero
	}
	return c.vestTotal.Mul(c.rates.EmployeeContribution.Decimal())
}

func (c RsuTaxCalculator) socialTax(tmi domain.MarginalRate) decimal.Decimal {
	high := c.vestTotal.Mul(c.rates.Social.High.Decimal())

	// part of the CSG is deductible from income, worth
	// deductible_csg * tmi percent of the vest total
	deductibleCsgRatio := decimal.NewFromFloat(c.rates.Social.DeductibleCsg).Mul(tmi.Decimal()).Div(hundred)
	deducted := c.vestTotal.Mul(deductibleCsgRatio).Div(hundred)
	low := c.vestTotal.Mul(c.rates.Social.Low.Decimal()).Sub(deducted)

	switch c.taxPeriod {
	case domain.TaxPeriod_1:
		return high
	case domain.TaxPeriod_2:
		return low
	default:
		if c.belowVestGainCutoff() {
			return high
		}
		return low
	}
}

func (c RsuTaxCalculator) vestingTaxTotal(tmi domain.MarginalRate) decimal.Decimal {
	return c.vestingTaxBase(tmi).
		Add(c.employeeContributionTax()).
		Add(c.socialTax(tmi))
}
