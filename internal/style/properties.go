package style

import (
	"github.com/alexisbeaulieu97/flexkit/internal/breakpoint"
	"github.com/alexisbeaulieu97/flexkit/internal/responsive"
	"github.com/alexisbeaulieu97/flexkit/internal/tokens"
	flexerrors "github.com/alexisbeaulieu97/flexkit/pkg/errors"
)

// Properties is a full responsive property set. Unset fields contribute
// nothing. Field order is the declaration order used when composing classes.
type Properties struct {
	FlexDirection  responsive.Value[tokens.Direction]
	JustifyContent responsive.Value[tokens.Justify]
	AlignItems     responsive.Value[tokens.AlignItems]
	AlignContent   responsive.Value[tokens.AlignContent]
	AlignSelf      responsive.Value[tokens.AlignSelf]
	FlexWrap       responsive.Value[tokens.Wrap]
	FlexGrow       responsive.Value[float64]
	FlexShrink     responsive.Value[float64]
	FlexBasis      responsive.Value[float64]

	Gap       responsive.Value[tokens.Spacing]
	RowGap    responsive.Value[tokens.Spacing]
	ColumnGap responsive.Value[tokens.Spacing]

	Margin           responsive.Value[tokens.Spacing]
	MarginHorizontal responsive.Value[tokens.Spacing]
	MarginVertical   responsive.Value[tokens.Spacing]
	MarginTop        responsive.Value[tokens.Spacing]
	MarginBottom     responsive.Value[tokens.Spacing]
	MarginLeft       responsive.Value[tokens.Spacing]
	MarginRight      responsive.Value[tokens.Spacing]

	Padding           responsive.Value[tokens.Spacing]
	PaddingHorizontal responsive.Value[tokens.Spacing]
	PaddingVertical   responsive.Value[tokens.Spacing]
	PaddingTop        responsive.Value[tokens.Spacing]
	PaddingBottom     responsive.Value[tokens.Spacing]
	PaddingLeft       responsive.Value[tokens.Spacing]
	PaddingRight      responsive.Value[tokens.Spacing]

	BorderRadius    responsive.Value[tokens.Spacing]
	Shadow          responsive.Value[tokens.Shadow]
	BackgroundColor responsive.Value[tokens.Color]
	TextAlign       responsive.Value[tokens.TextAlign]
}

// binding connects one property to its token table for both resolvers.
type binding struct {
	property Property
	// expands marks properties that write several native fields; they are
	// merged after every single-field property.
	expands bool
	native  func(p *Properties, bp breakpoint.Breakpoint, platform tokens.Platform) (map[string]any, error)
	classes func(p *Properties) ([]string, error)
}

// field describes a property whose value type is T.
type field[T any] struct {
	property Property
	get      func(*Properties) responsive.Value[T]
	// value maps a token to its single native field value.
	value func(T) (any, error)
	// expand maps a token to several native fields.
	expand func(T, tokens.Platform) (map[string]any, error)
	class  func(T) (string, error)
}

func (f field[T]) bind() binding {
	return binding{
		property: f.property,
		expands:  f.expand != nil,
		native: func(p *Properties, bp breakpoint.Breakpoint, platform tokens.Platform) (map[string]any, error) {
			token, ok := f.get(p).At(bp)
			if !ok {
				return nil, nil
			}
			if f.expand != nil {
				return f.expand(token, platform)
			}
			value, err := f.value(token)
			if err != nil {
				return nil, err
			}
			return map[string]any{f.property.String(): value}, nil
		},
		classes: func(p *Properties) ([]string, error) {
			return classesFor(f.get(p), f.class)
		},
	}
}

// classesFor emits one unscoped class for a scalar and one scoped class per
// non-empty slot for a tuple.
func classesFor[T any](v responsive.Value[T], class func(T) (string, error)) ([]string, error) {
	if !v.IsSet() {
		return nil, nil
	}
	if token, ok := v.ScalarValue(); ok {
		base, err := class(token)
		if err != nil {
			return nil, err
		}
		return []string{base}, nil
	}

	out := make([]string, 0, breakpoint.Count)
	for _, bp := range breakpoint.All() {
		token, ok := v.WebAt(bp)
		if !ok {
			continue
		}
		base, err := class(token)
		if err != nil {
			return nil, err
		}
		out = append(out, ScopedClass(base, bp))
	}
	return out, nil
}

// ScopedClass applies the breakpoint naming convention to a base class.
func ScopedClass(base string, bp breakpoint.Breakpoint) string {
	return base + "-" + bp.Tag()
}

func keyword[T interface{ Native() (string, error) }](token T) (any, error) {
	return token.Native()
}

func pixels(s tokens.Spacing) (any, error) {
	return s.Pixels()
}

func spacingClass(prefix string) func(tokens.Spacing) (string, error) {
	return func(s tokens.Spacing) (string, error) {
		scale, err := s.Scale()
		if err != nil {
			return "", err
		}
		return prefix + "-" + scale, nil
	}
}

func factor(v float64) (any, error) {
	if err := tokens.ValidateFactor(v); err != nil {
		return nil, err
	}
	return v, nil
}

func factorClass(axis string) func(float64) (string, error) {
	return func(v float64) (string, error) {
		return tokens.FactorClass(axis, v)
	}
}

func colorHex(c tokens.Color) (any, error) {
	return c.Hex()
}

func spacingField(prop Property, get func(*Properties) responsive.Value[tokens.Spacing]) binding {
	return field[tokens.Spacing]{
		property: prop,
		get:      get,
		value:    pixels,
		class:    spacingClass(spacingPrefixes[prop]),
	}.bind()
}

// bindings is ordered by declaration order.
var bindings = []binding{
	field[tokens.Direction]{
		property: PropFlexDirection,
		get:      func(p *Properties) responsive.Value[tokens.Direction] { return p.FlexDirection },
		value:    keyword[tokens.Direction],
		class:    tokens.Direction.Class,
	}.bind(),
	field[tokens.Justify]{
		property: PropJustifyContent,
		get:      func(p *Properties) responsive.Value[tokens.Justify] { return p.JustifyContent },
		value:    keyword[tokens.Justify],
		class:    tokens.Justify.Class,
	}.bind(),
	field[tokens.AlignItems]{
		property: PropAlignItems,
		get:      func(p *Properties) responsive.Value[tokens.AlignItems] { return p.AlignItems },
		value:    keyword[tokens.AlignItems],
		class:    tokens.AlignItems.Class,
	}.bind(),
	field[tokens.AlignContent]{
		property: PropAlignContent,
		get:      func(p *Properties) responsive.Value[tokens.AlignContent] { return p.AlignContent },
		value:    keyword[tokens.AlignContent],
		class:    tokens.AlignContent.Class,
	}.bind(),
	field[tokens.AlignSelf]{
		property: PropAlignSelf,
		get:      func(p *Properties) responsive.Value[tokens.AlignSelf] { return p.AlignSelf },
		value:    keyword[tokens.AlignSelf],
		class:    tokens.AlignSelf.Class,
	}.bind(),
	field[tokens.Wrap]{
		property: PropFlexWrap,
		get:      func(p *Properties) responsive.Value[tokens.Wrap] { return p.FlexWrap },
		value:    keyword[tokens.Wrap],
		class:    tokens.Wrap.Class,
	}.bind(),
	field[float64]{
		property: PropFlexGrow,
		get:      func(p *Properties) responsive.Value[float64] { return p.FlexGrow },
		value:    factor,
		class:    factorClass(tokens.FactorGrow),
	}.bind(),
	field[float64]{
		property: PropFlexShrink,
		get:      func(p *Properties) responsive.Value[float64] { return p.FlexShrink },
		value:    factor,
		class:    factorClass(tokens.FactorShrink),
	}.bind(),
	field[float64]{
		property: PropFlexBasis,
		get:      func(p *Properties) responsive.Value[float64] { return p.FlexBasis },
		value:    factor,
		class:    factorClass(tokens.FactorBasis),
	}.bind(),
	spacingField(PropGap, func(p *Properties) responsive.Value[tokens.Spacing] { return p.Gap }),
	spacingField(PropRowGap, func(p *Properties) responsive.Value[tokens.Spacing] { return p.RowGap }),
	spacingField(PropColumnGap, func(p *Properties) responsive.Value[tokens.Spacing] { return p.ColumnGap }),
	spacingField(PropMargin, func(p *Properties) responsive.Value[tokens.Spacing] { return p.Margin }),
	spacingField(PropMarginHorizontal, func(p *Properties) responsive.Value[tokens.Spacing] { return p.MarginHorizontal }),
	spacingField(PropMarginVertical, func(p *Properties) responsive.Value[tokens.Spacing] { return p.MarginVertical }),
	spacingField(PropMarginTop, func(p *Properties) responsive.Value[tokens.Spacing] { return p.MarginTop }),
	spacingField(PropMarginBottom, func(p *Properties) responsive.Value[tokens.Spacing] { return p.MarginBottom }),
	spacingField(PropMarginLeft, func(p *Properties) responsive.Value[tokens.Spacing] { return p.MarginLeft }),
	spacingField(PropMarginRight, func(p *Properties) responsive.Value[tokens.Spacing] { return p.MarginRight }),
	spacingField(PropPadding, func(p *Properties) responsive.Value[tokens.Spacing] { return p.Padding }),
	spacingField(PropPaddingHorizontal, func(p *Properties) responsive.Value[tokens.Spacing] { return p.PaddingHorizontal }),
	spacingField(PropPaddingVertical, func(p *Properties) responsive.Value[tokens.Spacing] { return p.PaddingVertical }),
	spacingField(PropPaddingTop, func(p *Properties) responsive.Value[tokens.Spacing] { return p.PaddingTop }),
	spacingField(PropPaddingBottom, func(p *Properties) responsive.Value[tokens.Spacing] { return p.PaddingBottom }),
	spacingField(PropPaddingLeft, func(p *Properties) responsive.Value[tokens.Spacing] { return p.PaddingLeft }),
	spacingField(PropPaddingRight, func(p *Properties) responsive.Value[tokens.Spacing] { return p.PaddingRight }),
	field[tokens.Spacing]{
		property: PropBorderRadius,
		get:      func(p *Properties) responsive.Value[tokens.Spacing] { return p.BorderRadius },
		value:    pixels,
		class:    tokens.Spacing.RadiusClass,
	}.bind(),
	field[tokens.Shadow]{
		property: PropShadow,
		get:      func(p *Properties) responsive.Value[tokens.Shadow] { return p.Shadow },
		expand:   tokens.Shadow.NativeFields,
		class:    tokens.Shadow.Class,
	}.bind(),
	field[tokens.Color]{
		property: PropBackgroundColor,
		get:      func(p *Properties) responsive.Value[tokens.Color] { return p.BackgroundColor },
		value:    colorHex,
		class:    tokens.Color.BackgroundClass,
	}.bind(),
	field[tokens.TextAlign]{
		property: PropTextAlign,
		get:      func(p *Properties) responsive.Value[tokens.TextAlign] { return p.TextAlign },
		value:    keyword[tokens.TextAlign],
		class:    tokens.TextAlign.Class,
	}.bind(),
}

func wrapProperty(prop Property, err error) error {
	return flexerrors.NewResolveError(prop.String(), err)
}
