package style

import "fmt"

// Property names one entry of the closed property vocabulary.
type Property int

const (
	PropFlexDirection Property = iota
	PropJustifyContent
	PropAlignItems
	PropAlignContent
	PropAlignSelf
	PropFlexWrap
	PropFlexGrow
	PropFlexShrink
	PropFlexBasis
	PropGap
	PropRowGap
	PropColumnGap
	PropMargin
	PropMarginHorizontal
	PropMarginVertical
	PropMarginTop
	PropMarginBottom
	PropMarginLeft
	PropMarginRight
	PropPadding
	PropPaddingHorizontal
	PropPaddingVertical
	PropPaddingTop
	PropPaddingBottom
	PropPaddingLeft
	PropPaddingRight
	PropBorderRadius
	PropShadow
	PropBackgroundColor
	PropTextAlign
)

var propertyNames = [...]string{
	"flexDirection",
	"justifyContent",
	"alignItems",
	"alignContent",
	"alignSelf",
	"flexWrap",
	"flexGrow",
	"flexShrink",
	"flexBasis",
	"gap",
	"rowGap",
	"columnGap",
	"margin",
	"marginHorizontal",
	"marginVertical",
	"marginTop",
	"marginBottom",
	"marginLeft",
	"marginRight",
	"padding",
	"paddingHorizontal",
	"paddingVertical",
	"paddingTop",
	"paddingBottom",
	"paddingLeft",
	"paddingRight",
	"borderRadius",
	"shadow",
	"backgroundColor",
	"textAlign",
}

// spacingPrefixes holds the utility class prefix for spacing properties.
var spacingPrefixes = map[Property]string{
	PropGap:               "gap",
	PropRowGap:            "gap-y",
	PropColumnGap:         "gap-x",
	PropMargin:            "m",
	PropMarginHorizontal:  "mx",
	PropMarginVertical:    "my",
	PropMarginTop:         "mt",
	PropMarginBottom:      "mb",
	PropMarginLeft:        "ml",
	PropMarginRight:       "mr",
	PropPadding:           "p",
	PropPaddingHorizontal: "px",
	PropPaddingVertical:   "py",
	PropPaddingTop:        "pt",
	PropPaddingBottom:     "pb",
	PropPaddingLeft:       "pl",
	PropPaddingRight:      "pr",
}

// AllProperties lists the vocabulary in declaration order.
func AllProperties() []Property {
	out := make([]Property, len(propertyNames))
	for i := range propertyNames {
		out[i] = Property(i)
	}
	return out
}

// ParseProperty looks a property up by its camelCase name.
func ParseProperty(name string) (Property, bool) {
	for i, candidate := range propertyNames {
		if candidate == name {
			return Property(i), true
		}
	}
	return 0, false
}

// String returns the camelCase name, which is also the native style field.
func (p Property) String() string {
	if p >= 0 && int(p) < len(propertyNames) {
		return propertyNames[p]
	}
	return fmt.Sprintf("Property(%d)", int(p))
}
