package rsutax_errors

import (
	"fmt"
)

type ErrInvalidGrantInput struct {
	Field   string
	Message string
}

func (e ErrInvalidGrantInput) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid grant input %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid grant input: %s", e.Message)
}

type ErrInvalidRateTable struct {
	Field   string
	Message string
}

func (e ErrInvalidRateTable) Error() string {
	return fmt.Sprintf("invalid rate table %s: %s", e.Field, e.Message)
}
