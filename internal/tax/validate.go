package tax

import (
	"fmt"
	rsutax_errors "rsutax/internal"
	"rsutax/internal/domain"
	"rsutax/internal/util"

	"go.uber.org/multierr"
)

// ValidateGrant reports every problem with the grant at
// once. each one is an ErrInvalidGrantInput
func ValidateGrant(g domain.Grant) error {
	var err error
	if g.Quantity <= 0 {
		err = multierr.Append(err, rsutax_errors.ErrInvalidGrantInput{
			Field:   "quantity",
			Message: fmt.Sprintf("must be positive, got %d", g.Quantity),
		})
	}
	if g.VestUnitValue < 0 {
		err = multierr.Append(err, rsutax_errors.ErrInvalidGrantInput{
			Field:   "vest unit value",
			Message: fmt.Sprintf("must not be negative, got %v", float64(g.VestUnitValue)),
		})
	}
	if g.SellUnitValue < 0 {
		err = multierr.Append(err, rsutax_errors.ErrInvalidGrantInput{
			Field:   "sell unit value",
			Message: fmt.Sprintf("must not be negative, got %v", float64(g.SellUnitValue)),
		})
	}
	if g.GrantDate.IsZero() {
		err = multierr.Append(err, rsutax_errors.ErrInvalidGrantInput{
			Field:   "grant date",
			Message: "missing",
		})
	}
	if g.SellDate.IsZero() {
		err = multierr.Append(err, rsutax_errors.ErrInvalidGrantInput{
			Field:   "sell date",
			Message: "missing",
		})
	}
	if !g.GrantDate.IsZero() && !g.SellDate.IsZero() && util.Date(g.SellDate).Before(util.Date(g.GrantDate)) {
		err = multierr.Append(err, rsutax_errors.ErrInvalidGrantInput{
			Field: "sell date",
			Message: fmt.Sprintf(
				"%s is before grant date %s",
				g.SellDate.Format(util.DateLayout),
				g.GrantDate.Format(util.DateLayout),
			),
		})
	}

	return err
}
