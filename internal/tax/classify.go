package tax

import (
	"rsutax/internal/config"
	"rsutax/internal/domain"
	"rsutax/internal/util"
	"time"
)

// ClassifyTaxPeriod maps a grant date onto its regime. a
// date exactly on a cutoff belongs to the later period
func ClassifyTaxPeriod(grantDate time.Time, cutoffs config.Cutoffs) domain.TaxPeriod {
	d := util.Date(grantDate)
	switch {
	case !d.Before(util.Date(cutoffs.Period4Start)):
		return domain.TaxPeriod_4
	case !d.Before(util.Date(cutoffs.Period3Start)):
		return domain.TaxPeriod_3
	case !d.Before(util.Date(cutoffs.Period2Start)):
		return domain.TaxPeriod_2
	default:
		return domain.TaxPeriod_1
	}
}
