package layout

import (
	"strconv"

	"github.com/alexisbeaulieu97/flexkit/internal/style"
	"github.com/alexisbeaulieu97/flexkit/internal/tokens"
)

// TextProps styles a run of text. Text is not responsive. Type and Color
// must be set explicitly: their zero values are title and light, so start
// from DefaultTextProps when only some fields are known.
type TextProps struct {
	Type  tokens.TextType
	Color tokens.Color
	Bold  bool
}

// DefaultTextProps returns body text in the dark color.
func DefaultTextProps() TextProps {
	return TextProps{Type: tokens.TextBody, Color: tokens.ColorDark}
}

// Text resolves the inline text style for host. Web styles carry the line
// height as a CSS length and render inline.
func Text(host Host, props TextProps) (Rendered, error) {
	ctx, err := measure(host)
	if err != nil {
		return Rendered{}, err
	}
	return ctx.text(props)
}

func (c pass) text(props TextProps) (Rendered, error) {
	fontSize, err := props.Type.FontSize()
	if err != nil {
		return Rendered{}, err
	}
	lineHeight, err := props.Type.LineHeight()
	if err != nil {
		return Rendered{}, err
	}
	color, err := props.Color.TextHex()
	if err != nil {
		return Rendered{}, err
	}

	s := style.Style{
		"fontSize":   fontSize,
		"color":      color,
		"fontFamily": tokens.FontFamily,
	}
	if props.Bold {
		s["fontWeight"] = "bold"
	}
	if c.platform.IsNative() {
		s["lineHeight"] = lineHeight
	} else {
		s["lineHeight"] = strconv.Itoa(lineHeight) + "px"
		s["display"] = "inline"
	}

	return Rendered{Platform: c.platform, Breakpoint: c.breakpoint, Style: s}, nil
}
