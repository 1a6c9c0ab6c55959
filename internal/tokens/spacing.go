package tokens

import "fmt"

// Spacing is a spacing token used for gaps, margins, paddings and radii.
type Spacing int

const (
	SpacingNone Spacing = iota
	SpacingSmall
	SpacingMedium
	SpacingLarge
)

var spacingNames = []string{"none", "small", "medium", "large"}

// ParseSpacing parses a spacing token name.
func ParseSpacing(s string) (Spacing, error) {
	i, err := parseName("spacing", s, spacingNames)
	return Spacing(i), err
}

// Pixels returns the physical size of the token. The scale is shared by
// every platform.
func (s Spacing) Pixels() (int, error) {
	switch s {
	case SpacingNone:
		return 0, nil
	case SpacingSmall:
		return 4, nil
	case SpacingMedium:
		return 8, nil
	case SpacingLarge:
		return 16, nil
	default:
		return 0, invalid("spacing", int(s))
	}
}

// Scale returns the utility class scale step for the token (one step is 4px).
func (s Spacing) Scale() (string, error) {
	switch s {
	case SpacingNone:
		return "0", nil
	case SpacingSmall:
		return "1", nil
	case SpacingMedium:
		return "2", nil
	case SpacingLarge:
		return "4", nil
	default:
		return "", invalid("spacing", int(s))
	}
}

// RadiusClass returns the border radius utility class for the token.
func (s Spacing) RadiusClass() (string, error) {
	switch s {
	case SpacingNone:
		return "rounded-none", nil
	case SpacingSmall:
		return "rounded", nil
	case SpacingMedium:
		return "rounded-lg", nil
	case SpacingLarge:
		return "rounded-2xl", nil
	default:
		return "", invalid("spacing", int(s))
	}
}

// Spacings lists every spacing token.
func Spacings() []Spacing {
	return []Spacing{SpacingNone, SpacingSmall, SpacingMedium, SpacingLarge}
}

func (s Spacing) String() string {
	if name, ok := nameOf(spacingNames, int(s)); ok {
		return name
	}
	return fmt.Sprintf("Spacing(%d)", int(s))
}
