package domain

import (
	"github.com/shopspring/decimal"
)

// typed numbers that represent the actual unit
// we want. a marginal rate of 41 and a ratio of
// 0.41 are easy to mix up when both are float64

// MarginalRate is the taxpayer's marginal income
// tax bracket (TMI), expressed as a percent: 41
// means 41%
type MarginalRate float64

func (m MarginalRate) AsPercent() float64 {
	return float64(m)
}

func (m MarginalRate) Decimal() decimal.Decimal {
	return decimal.NewFromFloat(float64(m))
}

// Ratio is a plain multiplier, 0.3 means 30%
type Ratio float64

func (r Ratio) Decimal() decimal.Decimal {
	return decimal.NewFromFloat(float64(r))
}

// EUR amounts. there is no currency conversion
// anywhere, inputs and outputs share a currency
type EUR float64

func (e EUR) Decimal() decimal.Decimal {
	return decimal.NewFromFloat(float64(e))
}
