package tokens

import (
	"math"
	"strconv"

	flexerrors "github.com/alexisbeaulieu97/flexkit/pkg/errors"
)

// Flex factor axes. Grow, shrink and basis are independent numeric values,
// never a composite.
const (
	FactorGrow   = "grow"
	FactorShrink = "shrink"
	FactorBasis  = "basis"
)

// ValidateFactor checks that v is a finite, non-negative flex factor.
func ValidateFactor(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return flexerrors.NewTokenError("flex factor", FormatFactor(v))
	}
	return nil
}

// FormatFactor renders a factor without a trailing fraction when integral.
func FormatFactor(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FactorClass returns the utility class for a flex factor on the given axis.
// Zero and one have dedicated classes; every other value uses the arbitrary
// value syntax. Basis values carry a px unit.
func FactorClass(axis string, v float64) (string, error) {
	if err := ValidateFactor(v); err != nil {
		return "", err
	}

	switch axis {
	case FactorGrow, FactorShrink:
		switch v {
		case 0:
			return axis + "-0", nil
		case 1:
			return axis, nil
		}
		return axis + "-[" + FormatFactor(v) + "]", nil
	case FactorBasis:
		switch v {
		case 0:
			return "basis-0", nil
		case 1:
			return "basis-px", nil
		}
		return "basis-[" + FormatFactor(v) + "px]", nil
	default:
		return "", flexerrors.NewTokenError("flex axis", axis)
	}
}
