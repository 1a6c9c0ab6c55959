package tokens

import "fmt"

// The flex-box vocabularies below use their CSS keyword as both the token name
// and the native style value.

// Direction is the main axis of a flex container.
type Direction int

const (
	DirectionRow Direction = iota
	DirectionColumn
)

var directionNames = []string{"row", "column"}

// ParseDirection parses a flex direction keyword.
func ParseDirection(s string) (Direction, error) {
	i, err := parseName("direction", s, directionNames)
	return Direction(i), err
}

// Native returns the native style value.
func (d Direction) Native() (string, error) {
	if name, ok := nameOf(directionNames, int(d)); ok {
		return name, nil
	}
	return "", invalid("direction", int(d))
}

// Class returns the utility class.
func (d Direction) Class() (string, error) {
	switch d {
	case DirectionRow:
		return "flex-row", nil
	case DirectionColumn:
		return "flex-col", nil
	default:
		return "", invalid("direction", int(d))
	}
}

func (d Direction) String() string {
	if name, ok := nameOf(directionNames, int(d)); ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Wrap is a flex wrap mode.
type Wrap int

const (
	WrapNone Wrap = iota
	WrapWrap
	WrapReverse
)

var wrapNames = []string{"nowrap", "wrap", "wrap-reverse"}

// ParseWrap parses a flex wrap keyword.
func ParseWrap(s string) (Wrap, error) {
	i, err := parseName("wrap", s, wrapNames)
	return Wrap(i), err
}

// Native returns the native style value.
func (w Wrap) Native() (string, error) {
	if name, ok := nameOf(wrapNames, int(w)); ok {
		return name, nil
	}
	return "", invalid("wrap", int(w))
}

// Class returns the utility class.
func (w Wrap) Class() (string, error) {
	switch w {
	case WrapNone:
		return "flex-nowrap", nil
	case WrapWrap:
		return "flex-wrap", nil
	case WrapReverse:
		return "flex-wrap-reverse", nil
	default:
		return "", invalid("wrap", int(w))
	}
}

func (w Wrap) String() string {
	if name, ok := nameOf(wrapNames, int(w)); ok {
		return name
	}
	return fmt.Sprintf("Wrap(%d)", int(w))
}

// Justify is a main-axis justification keyword.
type Justify int

const (
	JustifyStart Justify = iota
	JustifyCenter
	JustifyEnd
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

var justifyNames = []string{"flex-start", "center", "flex-end", "space-between", "space-around", "space-evenly"}

// ParseJustify parses a justify-content keyword.
func ParseJustify(s string) (Justify, error) {
	i, err := parseName("justify", s, justifyNames)
	return Justify(i), err
}

// Native returns the native style value.
func (j Justify) Native() (string, error) {
	if name, ok := nameOf(justifyNames, int(j)); ok {
		return name, nil
	}
	return "", invalid("justify", int(j))
}

// Class returns the utility class.
func (j Justify) Class() (string, error) {
	switch j {
	case JustifyStart:
		return "justify-start", nil
	case JustifyCenter:
		return "justify-center", nil
	case JustifyEnd:
		return "justify-end", nil
	case JustifySpaceBetween:
		return "justify-between", nil
	case JustifySpaceAround:
		return "justify-around", nil
	case JustifySpaceEvenly:
		return "justify-evenly", nil
	default:
		return "", invalid("justify", int(j))
	}
}

func (j Justify) String() string {
	if name, ok := nameOf(justifyNames, int(j)); ok {
		return name
	}
	return fmt.Sprintf("Justify(%d)", int(j))
}

// AlignItems is a cross-axis alignment keyword for children.
type AlignItems int

const (
	AlignItemsStart AlignItems = iota
	AlignItemsCenter
	AlignItemsEnd
	AlignItemsStretch
	AlignItemsBaseline
)

var alignItemsNames = []string{"flex-start", "center", "flex-end", "stretch", "baseline"}

// ParseAlignItems parses an align-items keyword.
func ParseAlignItems(s string) (AlignItems, error) {
	i, err := parseName("align items", s, alignItemsNames)
	return AlignItems(i), err
}

// Native returns the native style value.
func (a AlignItems) Native() (string, error) {
	if name, ok := nameOf(alignItemsNames, int(a)); ok {
		return name, nil
	}
	return "", invalid("align items", int(a))
}

// Class returns the utility class.
func (a AlignItems) Class() (string, error) {
	switch a {
	case AlignItemsStart:
		return "items-start", nil
	case AlignItemsCenter:
		return "items-center", nil
	case AlignItemsEnd:
		return "items-end", nil
	case AlignItemsStretch:
		return "items-stretch", nil
	case AlignItemsBaseline:
		return "items-baseline", nil
	default:
		return "", invalid("align items", int(a))
	}
}

func (a AlignItems) String() string {
	if name, ok := nameOf(alignItemsNames, int(a)); ok {
		return name
	}
	return fmt.Sprintf("AlignItems(%d)", int(a))
}

// AlignContent distributes wrapped lines along the cross axis.
type AlignContent int

const (
	AlignContentStart AlignContent = iota
	AlignContentCenter
	AlignContentEnd
	AlignContentStretch
	AlignContentSpaceBetween
	AlignContentSpaceAround
)

var alignContentNames = []string{"flex-start", "center", "flex-end", "stretch", "space-between", "space-around"}

// ParseAlignContent parses an align-content keyword.
func ParseAlignContent(s string) (AlignContent, error) {
	i, err := parseName("align content", s, alignContentNames)
	return AlignContent(i), err
}

// Native returns the native style value.
func (a AlignContent) Native() (string, error) {
	if name, ok := nameOf(alignContentNames, int(a)); ok {
		return name, nil
	}
	return "", invalid("align content", int(a))
}

// Class returns the utility class.
func (a AlignContent) Class() (string, error) {
	switch a {
	case AlignContentStart:
		return "content-start", nil
	case AlignContentCenter:
		return "content-center", nil
	case AlignContentEnd:
		return "content-end", nil
	case AlignContentStretch:
		return "content-stretch", nil
	case AlignContentSpaceBetween:
		return "content-between", nil
	case AlignContentSpaceAround:
		return "content-around", nil
	default:
		return "", invalid("align content", int(a))
	}
}

func (a AlignContent) String() string {
	if name, ok := nameOf(alignContentNames, int(a)); ok {
		return name
	}
	return fmt.Sprintf("AlignContent(%d)", int(a))
}

// AlignSelf overrides the parent's cross-axis alignment for one child.
type AlignSelf int

const (
	AlignSelfAuto AlignSelf = iota
	AlignSelfStart
	AlignSelfCenter
	AlignSelfEnd
	AlignSelfStretch
	AlignSelfBaseline
)

var alignSelfNames = []string{"auto", "flex-start", "center", "flex-end", "stretch", "baseline"}

// ParseAlignSelf parses an align-self keyword.
func ParseAlignSelf(s string) (AlignSelf, error) {
	i, err := parseName("align self", s, alignSelfNames)
	return AlignSelf(i), err
}

// Native returns the native style value.
func (a AlignSelf) Native() (string, error) {
	if name, ok := nameOf(alignSelfNames, int(a)); ok {
		return name, nil
	}
	return "", invalid("align self", int(a))
}

// Class returns the utility class.
func (a AlignSelf) Class() (string, error) {
	switch a {
	case AlignSelfAuto:
		return "self-auto", nil
	case AlignSelfStart:
		return "self-start", nil
	case AlignSelfCenter:
		return "self-center", nil
	case AlignSelfEnd:
		return "self-end", nil
	case AlignSelfStretch:
		return "self-stretch", nil
	case AlignSelfBaseline:
		return "self-baseline", nil
	default:
		return "", invalid("align self", int(a))
	}
}

func (a AlignSelf) String() string {
	if name, ok := nameOf(alignSelfNames, int(a)); ok {
		return name
	}
	return fmt.Sprintf("AlignSelf(%d)", int(a))
}

// TextAlign is a horizontal text alignment keyword.
type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
	TextAlignJustify
)

var textAlignNames = []string{"left", "center", "right", "justify"}

// ParseTextAlign parses a text-align keyword.
func ParseTextAlign(s string) (TextAlign, error) {
	i, err := parseName("text align", s, textAlignNames)
	return TextAlign(i), err
}

// Native returns the native style value.
func (a TextAlign) Native() (string, error) {
	if name, ok := nameOf(textAlignNames, int(a)); ok {
		return name, nil
	}
	return "", invalid("text align", int(a))
}

// Class returns the utility class.
func (a TextAlign) Class() (string, error) {
	name, err := a.Native()
	if err != nil {
		return "", err
	}
	return "text-" + name, nil
}

func (a TextAlign) String() string {
	if name, ok := nameOf(textAlignNames, int(a)); ok {
		return name
	}
	return fmt.Sprintf("TextAlign(%d)", int(a))
}

// Directions lists every direction token.
func Directions() []Direction { return enumerate[Direction](directionNames) }

// Wraps lists every wrap token.
func Wraps() []Wrap { return enumerate[Wrap](wrapNames) }

// Justifies lists every justify token.
func Justifies() []Justify { return enumerate[Justify](justifyNames) }

// AlignItemsValues lists every align-items token.
func AlignItemsValues() []AlignItems { return enumerate[AlignItems](alignItemsNames) }

// AlignContents lists every align-content token.
func AlignContents() []AlignContent { return enumerate[AlignContent](alignContentNames) }

// AlignSelves lists every align-self token.
func AlignSelves() []AlignSelf { return enumerate[AlignSelf](alignSelfNames) }

// TextAligns lists every text-align token.
func TextAligns() []TextAlign { return enumerate[TextAlign](textAlignNames) }
