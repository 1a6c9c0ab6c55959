package tokens

import "fmt"

// Shadow is an elevation token.
type Shadow int

const (
	ShadowNone Shadow = iota
	ShadowLow
	ShadowMedium
	ShadowHigh
)

var shadowNames = []string{"none", "low", "medium", "high"}

// ShadowOffset is the iOS shadow offset in points.
type ShadowOffset struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ParseShadow parses a shadow token name.
func ParseShadow(s string) (Shadow, error) {
	i, err := parseName("shadow", s, shadowNames)
	return Shadow(i), err
}

// NativeFields returns the style fields the token expands to on a native
// platform. The returned map is freshly allocated. ShadowNone yields an empty
// map. Web has no native fields and is rejected.
func (s Shadow) NativeFields(platform Platform) (map[string]any, error) {
	if _, ok := nameOf(shadowNames, int(s)); !ok {
		return nil, invalid("shadow", int(s))
	}
	if !platform.IsNative() {
		return nil, invalid("native platform", int(platform))
	}
	if s == ShadowNone {
		return map[string]any{}, nil
	}

	if platform == PlatformIOS {
		return s.iosFields(), nil
	}
	return map[string]any{"elevation": s.elevation()}, nil
}

func (s Shadow) iosFields() map[string]any {
	switch s {
	case ShadowLow:
		return map[string]any{
			"shadowColor":   "#000",
			"shadowOffset":  ShadowOffset{Width: 0, Height: 1},
			"shadowOpacity": 0.18,
			"shadowRadius":  1.0,
		}
	case ShadowMedium:
		return map[string]any{
			"shadowColor":   "#000",
			"shadowOffset":  ShadowOffset{Width: 0, Height: 1},
			"shadowOpacity": 0.22,
			"shadowRadius":  2.22,
		}
	default:
		return map[string]any{
			"shadowColor":   "#000",
			"shadowOffset":  ShadowOffset{Width: 0, Height: 2},
			"shadowOpacity": 0.25,
			"shadowRadius":  3.84,
		}
	}
}

func (s Shadow) elevation() int {
	switch s {
	case ShadowLow:
		return 1
	case ShadowMedium:
		return 2
	default:
		return 4
	}
}

// BoxShadow returns the CSS box-shadow descriptor backing the web class.
func (s Shadow) BoxShadow() (string, error) {
	switch s {
	case ShadowNone:
		return "none", nil
	case ShadowLow:
		return "0 1px 1px 0 rgba(0, 0, 0, 0.18)", nil
	case ShadowMedium:
		return "0 1px 1px 0 rgba(0, 0, 0, 0.22)", nil
	case ShadowHigh:
		return "0 2px 2px 0 rgba(0, 0, 0, 0.25)", nil
	default:
		return "", invalid("shadow", int(s))
	}
}

// Class returns the shadow utility class for the token.
func (s Shadow) Class() (string, error) {
	switch s {
	case ShadowNone:
		return "shadow-none", nil
	case ShadowLow:
		return "shadow", nil
	case ShadowMedium:
		return "shadow-md", nil
	case ShadowHigh:
		return "shadow-lg", nil
	default:
		return "", invalid("shadow", int(s))
	}
}

// Shadows lists every shadow token.
func Shadows() []Shadow {
	return []Shadow{ShadowNone, ShadowLow, ShadowMedium, ShadowHigh}
}

func (s Shadow) String() string {
	if name, ok := nameOf(shadowNames, int(s)); ok {
		return name
	}
	return fmt.Sprintf("Shadow(%d)", int(s))
}
