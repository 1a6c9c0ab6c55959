package tokens

import (
	"fmt"

	flexerrors "github.com/alexisbeaulieu97/flexkit/pkg/errors"
)

// Color is a named colour token.
type Color int

const (
	ColorLight Color = iota
	ColorDark
	ColorWhite
	ColorBlack
	ColorError
	ColorSuccess
	ColorWarning
)

var colorNames = []string{"light", "dark", "white", "black", "error", "success", "warning"}

// ParseColor parses a colour token name.
func ParseColor(s string) (Color, error) {
	i, err := parseName("color", s, colorNames)
	return Color(i), err
}

// Hex returns the background hex value of the token, identical on every
// platform.
func (c Color) Hex() (string, error) {
	switch c {
	case ColorLight:
		return "#fafafa", nil
	case ColorDark:
		return "#121212", nil
	case ColorWhite:
		return "#fff", nil
	case ColorBlack:
		return "#000", nil
	case ColorError:
		return "#FF5252", nil
	case ColorSuccess:
		return "#4CAF50", nil
	case ColorWarning:
		return "#FF9800", nil
	default:
		return "", invalid("color", int(c))
	}
}

// TextHex returns the foreground hex value used by text. Only light, dark
// and the status colours are text colours.
func (c Color) TextHex() (string, error) {
	switch c {
	case ColorDark:
		return "#000", nil
	case ColorLight:
		return "#fff", nil
	case ColorError:
		return "#FF5252", nil
	case ColorSuccess:
		return "#4CAF50", nil
	case ColorWarning:
		return "#FF9800", nil
	case ColorWhite, ColorBlack:
		return "", flexerrors.NewTokenError("text color", c.String())
	default:
		return "", invalid("text color", int(c))
	}
}

// BackgroundClass returns the background utility class for the token.
func (c Color) BackgroundClass() (string, error) {
	switch c {
	case ColorLight:
		return "bg-slate-100", nil
	case ColorDark:
		return "bg-slate-900", nil
	case ColorWhite:
		return "bg-white", nil
	case ColorBlack:
		return "bg-black", nil
	case ColorError:
		return "bg-red-500", nil
	case ColorSuccess:
		return "bg-green-500", nil
	case ColorWarning:
		return "bg-yellow-500", nil
	default:
		return "", invalid("color", int(c))
	}
}

// Colors lists every colour token.
func Colors() []Color {
	return []Color{ColorLight, ColorDark, ColorWhite, ColorBlack, ColorError, ColorSuccess, ColorWarning}
}

func (c Color) String() string {
	if name, ok := nameOf(colorNames, int(c)); ok {
		return name
	}
	return fmt.Sprintf("Color(%d)", int(c))
}
