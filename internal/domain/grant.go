package domain

import (
	"time"
)

// Grant is one block of RSUs, from award to sale.
// Dates are calendar dates, clock and zone are ignored.
type Grant struct {
	Quantity      int64
	GrantDate     time.Time
	VestUnitValue EUR
	SellDate      time.Time
	SellUnitValue EUR
}

// TaxReport is the full breakdown for one grant
// at one marginal rate
type TaxReport struct {
	Grant       Grant
	TaxPeriod   TaxPeriod
	Tmi         MarginalRate
	HoldingDays int

	VestTotal EUR
	SellTotal EUR
	SellGain  EUR

	GainLossTax             EUR
	EmployeeContributionTax EUR
	SocialTax               EUR
	VestingTaxBase          EUR
	VestingTaxTotal         EUR
	TotalTax                EUR
}
