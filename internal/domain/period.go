package domain

import "fmt"

// TaxPeriod is the legal regime a grant falls under,
// decided by its grant date alone. The values are
// ordered so later regimes compare greater.
type TaxPeriod int

const (
	TaxPeriod_1 TaxPeriod = iota + 1
	TaxPeriod_2
	TaxPeriod_3
	TaxPeriod_4
)

var taxPeriodLabels = map[TaxPeriod]string{
	TaxPeriod_1: "Tax Period: before 27th Sept 2012",
	TaxPeriod_2: "Tax Period: between 28th Sept 2012 and 7th Aug 2015",
	TaxPeriod_3: "Tax Period: between 8th Aug 2015 and 31st Dec 2016",
	TaxPeriod_4: "Tax Period: after 1st Jan 2017",
}

func (p TaxPeriod) Label() string {
	if !p.IsValid() {
		return fmt.Sprintf("Tax Period: unknown (%d)", int(p))
	}
	return taxPeriodLabels[p]
}

func (p TaxPeriod) String() string {
	if !p.IsValid() {
		return fmt.Sprintf("PERIOD_UNKNOWN_%d", int(p))
	}
	switch p {
	case TaxPeriod_1:
		return "PERIOD_1"
	case TaxPeriod_2:
		return "PERIOD_2"
	case TaxPeriod_3:
		return "PERIOD_3"
	default:
		return "PERIOD_4"
	}
}

func (p TaxPeriod) IsValid() bool {
	return p >= TaxPeriod_1 && p <= TaxPeriod_4
}
