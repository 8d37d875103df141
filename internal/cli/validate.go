package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ascent-prep/ascent/internal/contract"
)

const dateLayout = "2006-01-02"

// validateDate checks a required future date in YYYY-MM-DD form.
func validateDate(s string) error {
	if s == "" {
		return fmt.Errorf("test date is required")
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("use YYYY-MM-DD, e.g. 2026-06-06")
	}
	if !d.After(time.Now()) {
		return fmt.Errorf("test date must be in the future")
	}
	return nil
}

// validateScore checks a score string against the 400-1600 scale.
func validateScore(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if n < contract.MinScore || n > contract.MaxScore {
		return fmt.Errorf("scores run from %d to %d", contract.MinScore, contract.MaxScore)
	}
	return nil
}

// validateTargetAbove returns a validator that also requires the target to
// beat the current score. current is read at validation time so the form
// can check fields in any order.
func validateTargetAbove(current *string) func(string) error {
	return func(s string) error {
		if err := validateScore(s); err != nil {
			return err
		}
		cur, err := strconv.Atoi(*current)
		if err != nil {
			return nil // current score field will report its own error
		}
		target, _ := strconv.Atoi(s)
		if target <= cur {
			return fmt.Errorf("target must be above your current score (%d)", cur)
		}
		return nil
	}
}
