package types

import (
	"rsutax/internal/domain"
	"rsutax/internal/util"
)

type GrantInput struct {
	Quantity      int64   `json:"quantity"`
	GrantDate     string  `json:"grantDate"`
	VestUnitValue float64 `json:"vestUnitValue"`
	SellDate      string  `json:"sellDate"`
	SellUnitValue float64 `json:"sellUnitValue"`
}

type TaxBreakdown struct {
	GainLossTax             float64 `json:"gainLossTax"`
	EmployeeContributionTax float64 `json:"employeeContributionTax"`
	SocialTax               float64 `json:"socialTax"`
	VestingTaxBase          float64 `json:"vestingTaxBase"`
	VestingTaxTotal         float64 `json:"vestingTaxTotal"`
	TotalTax                float64 `json:"totalTax"`
}

type TaxReportResponse struct {
	Grant          GrantInput   `json:"grant"`
	TaxPeriod      string       `json:"taxPeriod"`
	TaxPeriodLabel string       `json:"taxPeriodLabel"`
	Tmi            float64      `json:"tmi"`
	HoldingDays    int          `json:"holdingDays"`
	VestTotal      float64      `json:"vestTotal"`
	SellTotal      float64      `json:"sellTotal"`
	SellGain       float64      `json:"sellGain"`
	Taxes          TaxBreakdown `json:"taxes"`
}

func NewTaxReportResponse(r domain.TaxReport) TaxReportResponse {
	return TaxReportResponse{
		Grant: GrantInput{
			Quantity:      r.Grant.Quantity,
			GrantDate:     r.Grant.GrantDate.Format(util.DateLayout),
			VestUnitValue: float64(r.Grant.VestUnitValue),
			SellDate:      r.Grant.SellDate.Format(util.DateLayout),
			SellUnitValue: float64(r.Grant.SellUnitValue),
		},
		TaxPeriod:      r.TaxPeriod.String(),
		TaxPeriodLabel: r.TaxPeriod.Label(),
		Tmi:            r.Tmi.AsPercent(),
		HoldingDays:    r.HoldingDays,
		VestTotal:      float64(r.VestTotal),
		SellTotal:      float64(r.SellTotal),
		SellGain:       float64(r.SellGain),
		Taxes: TaxBreakdown{
			GainLossTax:             float64(r.GainLossTax),
			EmployeeContributionTax: float64(r.EmployeeContributionTax),
			SocialTax:               float64(r.SocialTax),
			VestingTaxBase:          float64(r.VestingTaxBase),
			VestingTaxTotal:         float64(r.VestingTaxTotal),
			TotalTax:                float64(r.TotalTax),
		},
	}
}
