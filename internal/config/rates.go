package config

import (
	"fmt"
	"os"
	"time"

	rsutax_errors "rsutax/internal"
	"rsutax/internal/domain"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// https://mensbridge.fr/fiscalite-pour-les-actions-gratuites/
// https://www.mingzi.fr/mingzi-actualites/taxation-et-fiscalite-des-actions-gratuites/

type Cutoffs struct {
	Period2Start time.Time `yaml:"period_2_start"`
	Period3Start time.Time `yaml:"period_3_start"`
	Period4Start time.Time `yaml:"period_4_start"`
}

type SocialRates struct {
	High          domain.Ratio `yaml:"high"`
	Low           domain.Ratio `yaml:"low"`
	DeductibleCsg float64      `yaml:"deductible_csg"` // percent points, 6.8 = 6.8%
}

type VestingRates struct {
	Period1TmiCap  domain.MarginalRate `yaml:"period_1_tmi_cap"`
	ShortDeduction domain.Ratio        `yaml:"short_holding_deduction"`
	LongDeduction  domain.Ratio        `yaml:"long_holding_deduction"`
	HoldingDays    int                 `yaml:"holding_days"`
}

// RateTable holds every legislated constant used by
// the calculator. values are EUR and ratios
type RateTable struct {
	Cutoffs              Cutoffs      `yaml:"cutoffs"`
	GainTax              domain.Ratio `yaml:"gain_tax"`
	EmployeeContribution domain.Ratio `yaml:"employee_contribution"`
	VestGainCutoff       domain.EUR   `yaml:"vest_gain_cutoff"`
	Social               SocialRates  `yaml:"social"`
	Vesting              VestingRates `yaml:"vesting"`

	// reproduce the historical dispatch where period 3
	// grants were taxed with the period 4 formula
	LegacyPeriod3Dispatch bool `yaml:"legacy_period_3_dispatch"`
}

const (
	_gainTaxDefault              = 0.3
	_employeeContributionDefault = 0.1
	_vestGainCutoffDefault       = 300000
	_socialHighDefault           = 0.172
	_socialLowDefault            = 0.097
	_deductibleCsgDefault        = 6.8
	_period1TmiCapDefault        = 30
	_shortDeductionDefault       = 0.5
	_longDeductionDefault        = 0.65
	_holdingDaysDefault          = 8*365 + 2
)

var (
	_period2StartDefault = time.Date(2012, 9, 28, 0, 0, 0, 0, time.UTC)
	_period3StartDefault = time.Date(2015, 8, 8, 0, 0, 0, 0, time.UTC)
	_period4StartDefault = time.Date(2017, 9, 27, 0, 0, 0, 0, time.UTC)
)

func DefaultRateTable() RateTable {
	r := RateTable{}
	r.Setup()
	return r
}

// Setup fills every zero field with its legislated default.
// yaml files are decoded onto DefaultRateTable instead, so an
// explicit 0 in a file is kept
func (r *RateTable) Setup() {
	if r.Cutoffs.Period2Start.IsZero() {
		r.Cutoffs.Period2Start = _period2StartDefault
	}
	if r.Cutoffs.Period3Start.IsZero() {
		r.Cutoffs.Period3Start = _period3StartDefault
	}
	if r.Cutoffs.Period4Start.IsZero() {
		r.Cutoffs.Period4Start = _period4StartDefault
	}

	if r.GainTax == 0 {
		r.GainTax = _gainTaxDefault
	}
	if r.EmployeeContribution == 0 {
		r.EmployeeContribution = _employeeContributionDefault
	}
	if r.VestGainCutoff == 0 {
		r.VestGainCutoff = _vestGainCutoffDefault
	}

	if r.Social.High == 0 {
		r.Social.High = _socialHighDefault
	}
	if r.Social.Low == 0 {
		r.Social.Low = _socialLowDefault
	}
	if r.Social.DeductibleCsg == 0 {
		r.Social.DeductibleCsg = _deductibleCsgDefault
	}

	if r.Vesting.Period1TmiCap == 0 {
		r.Vesting.Period1TmiCap = _period1TmiCapDefault
	}
	if r.Vesting.ShortDeduction == 0 {
		r.Vesting.ShortDeduction = _shortDeductionDefault
	}
	if r.Vesting.LongDeduction == 0 {
		r.Vesting.LongDeduction = _longDeductionDefault
	}
	if r.Vesting.HoldingDays == 0 {
		r.Vesting.HoldingDays = _holdingDaysDefault
	}
}

func (r RateTable) Validate() error {
	var err error
	invalid := func(field, msg string) {
		err = multierr.Append(err, rsutax_errors.ErrInvalidRateTable{Field: field, Message: msg})
	}

	if !r.Cutoffs.Period2Start.Before(r.Cutoffs.Period3Start) ||
		!r.Cutoffs.Period3Start.Before(r.Cutoffs.Period4Start) {
		invalid("cutoffs", "period start dates must be strictly increasing")
	}
	ratios := []struct {
		name  string
		value domain.Ratio
	}{
		{"gain_tax", r.GainTax},
		{"employee_contribution", r.EmployeeContribution},
		{"social.high", r.Social.High},
		{"social.low", r.Social.Low},
		{"vesting.short_holding_deduction", r.Vesting.ShortDeduction},
		{"vesting.long_holding_deduction", r.Vesting.LongDeduction},
	}
	for _, ratio := range ratios {
		if ratio.value < 0 || ratio.value > 1 {
			invalid(ratio.name, fmt.Sprintf("ratio %v outside [0, 1]", float64(ratio.value)))
		}
	}
	if r.Social.DeductibleCsg < 0 {
		invalid("social.deductible_csg", "must not be negative")
	}
	if r.VestGainCutoff < 0 {
		invalid("vest_gain_cutoff", "must not be negative")
	}
	if r.Vesting.Period1TmiCap < 0 {
		invalid("vesting.period_1_tmi_cap", "must not be negative")
	}
	if r.Vesting.HoldingDays <= 0 {
		invalid("vesting.holding_days", "must be positive")
	}

	return err
}

// ParseRateTable decodes yaml on top of the default table,
// only the keys present in input are overwritten
func ParseRateTable(input []byte) (RateTable, error) {
	r := DefaultRateTable()
	if err := yaml.Unmarshal(input, &r); err != nil {
		return r, fmt.Errorf("failed to unmarshal rate table: %w", err)
	}
	if err := r.Validate(); err != nil {
		return r, err
	}
	return r, nil
}

// LoadRateTable reads a yaml rate table. fields left out
// of the file keep their legislated defaults
func LoadRateTable(filename string) (RateTable, error) {
	input, err := os.ReadFile(filename)
	if err != nil {
		return RateTable{}, fmt.Errorf("could not read rate table %s: %w", filename, err)
	}
	return ParseRateTable(input)
}
