package tax

import (
	"rsutax/internal/domain"

	"github.com/shopspring/decimal"
)

// fiscalite des gains d'acquisition, one function per period

func (c RsuTaxCalculator) vestingTaxBase(tmi domain.MarginalRate) decimal.Decimal {
	switch c.taxPeriod {
	case domain.TaxPeriod_1:
		return c.vestingTaxPeriod1(tmi)
	case domain.TaxPeriod_2:
		return c.vestingTaxPeriod2(tmi)
	case domain.TaxPeriod_3:
		if c.rates.LegacyPeriod3Dispatch {
			return c.vestingTaxPeriod4(tmi)
		}
		return c.vestingTaxPeriod3(tmi)
	default:
		return c.vestingTaxPeriod4(tmi)
	}
}

// marginal rate capped
func (c RsuTaxCalculator) vestingTaxPeriod1(tmi domain.MarginalRate) decimal.Decimal {
	if tmi > c.rates.Vesting.Period1TmiCap {
		tmi = c.rates.Vesting.Period1TmiCap
	}
	return c.vestTotal.Mul(tmi.Decimal()).Div(hundred)
}

func (c RsuTaxCalculator) vestingTaxPeriod2(tmi domain.MarginalRate) decimal.Decimal {
	return c.vestTotal.Mul(tmi.Decimal()).Div(hundred)
}

// only part of the gain is taxed, less of it past the
// holding threshold (8 years + 2 days)
func (c RsuTaxCalculator) vestingTaxPeriod3(tmi domain.MarginalRate) decimal.Decimal {
	deduction := c.rates.Vesting.ShortDeduction
	if c.holdingDays >= c.rates.Vesting.HoldingDays {
		deduction = c.rates.Vesting.LongDeduction
	}
	return c.vestTotal.Mul(deduction.Decimal()).Mul(tmi.Decimal()).Div(hundred)
}

func (c RsuTaxCalculator) vestingTaxPeriod4(tmi domain.MarginalRate) decimal.Decimal {
	if c.belowVestGainCutoff() {
		return c.vestingTaxPeriod3(tmi)
	}
	return c.vestingTaxPeriod2(tmi)
}
