package tokens

import "fmt"

// TextType is a typography preset.
type TextType int

const (
	TextTitle TextType = iota
	TextSubtitle
	TextBody
	TextCaption
)

var textTypeNames = []string{"title", "subtitle", "body", "caption"}

// FontFamily is the single family used by every text preset.
const FontFamily = "Georgia"

// ParseTextType parses a typography preset name.
func ParseTextType(s string) (TextType, error) {
	i, err := parseName("text type", s, textTypeNames)
	return TextType(i), err
}

// FontSize returns the font size in pixels.
func (t TextType) FontSize() (int, error) {
	switch t {
	case TextTitle:
		return 24, nil
	case TextSubtitle:
		return 18, nil
	case TextBody:
		return 14, nil
	case TextCaption:
		return 12, nil
	default:
		return 0, invalid("text type", int(t))
	}
}

// LineHeight returns the line height in pixels.
func (t TextType) LineHeight() (int, error) {
	switch t {
	case TextTitle:
		return 32, nil
	case TextSubtitle:
		return 24, nil
	case TextBody:
		return 20, nil
	case TextCaption:
		return 16, nil
	default:
		return 0, invalid("text type", int(t))
	}
}

func (t TextType) String() string {
	if name, ok := nameOf(textTypeNames, int(t)); ok {
		return name
	}
	return fmt.Sprintf("TextType(%d)", int(t))
}
