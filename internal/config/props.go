package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/flexkit/internal/breakpoint"
	"github.com/alexisbeaulieu97/flexkit/internal/layout"
	"github.com/alexisbeaulieu97/flexkit/internal/responsive"
	"github.com/alexisbeaulieu97/flexkit/internal/style"
	"github.com/alexisbeaulieu97/flexkit/internal/tokens"
	flexerrors "github.com/alexisbeaulieu97/flexkit/pkg/errors"
)

// noneSlot inside a sequence marks a breakpoint with no contribution. As a
// plain scalar it is left to the token parser, where it is a token.
const noneSlot = "none"

// classNameKey is accepted by every container primitive.
const classNameKey = "className"

type parseFunc[T any] func(*yaml.Node) (T, error)

type propDecoder[P any] func(props *P, node *yaml.Node) error

func decodeResponsive[T any](node *yaml.Node, parse parseFunc[T]) (responsive.Value[T], error) {
	switch node.Kind {
	case yaml.ScalarNode:
		value, err := parse(node)
		if err != nil {
			return responsive.Value[T]{}, err
		}
		return responsive.Scalar(value), nil
	case yaml.SequenceNode:
		if len(node.Content) < 2 || len(node.Content) > breakpoint.Count {
			return responsive.Value[T]{}, fmt.Errorf("responsive value needs 2 or %d entries, got %d", breakpoint.Count, len(node.Content))
		}
		slots := make([]responsive.Slot[T], 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return responsive.Value[T]{}, fmt.Errorf("responsive entries must be scalars")
			}
			if item.Tag == "!!str" && item.Value == noneSlot {
				slots = append(slots, responsive.None[T]())
				continue
			}
			value, err := parse(item)
			if err != nil {
				return responsive.Value[T]{}, err
			}
			slots = append(slots, responsive.Some(value))
		}
		return responsive.Tuple(slots...), nil
	default:
		return responsive.Value[T]{}, fmt.Errorf("expected a value or a list of 2 or %d values", breakpoint.Count)
	}
}

func token[T any](parse func(string) (T, error)) parseFunc[T] {
	return func(node *yaml.Node) (T, error) {
		return parse(node.Value)
	}
}

func factor(node *yaml.Node) (float64, error) {
	var v float64
	if err := node.Decode(&v); err != nil {
		return 0, err
	}
	if err := tokens.ValidateFactor(v); err != nil {
		return 0, err
	}
	return v, nil
}

func boolean(node *yaml.Node) (bool, error) {
	var v bool
	err := node.Decode(&v)
	return v, err
}

func word(node *yaml.Node) (string, error) {
	return node.Value, nil
}

func bind[P, T any](parse parseFunc[T], field func(*P) *responsive.Value[T]) propDecoder[P] {
	return func(props *P, node *yaml.Node) error {
		v, err := decodeResponsive(node, parse)
		if err != nil {
			return err
		}
		*field(props) = v
		return nil
	}
}

func fixed[P, T any](parse parseFunc[T], field func(*P) *T) propDecoder[P] {
	return func(props *P, node *yaml.Node) error {
		if node.Kind != yaml.ScalarNode {
			return fmt.Errorf("expected a single value")
		}
		v, err := parse(node)
		if err != nil {
			return err
		}
		*field(props) = v
		return nil
	}
}

var (
	spacing   = token(tokens.ParseSpacing)
	shadow    = token(tokens.ParseShadow)
	color     = token(tokens.ParseColor)
	direction = token(tokens.ParseDirection)
)

type flexDecoder = propDecoder[style.Properties]

func spacingProp(field func(*style.Properties) *responsive.Value[tokens.Spacing]) flexDecoder {
	return bind(spacing, field)
}

var flexDecoders = map[string]flexDecoder{
	style.PropFlexDirection.String():  bind(direction, func(p *style.Properties) *responsive.Value[tokens.Direction] { return &p.FlexDirection }),
	style.PropJustifyContent.String(): bind(token(tokens.ParseJustify), func(p *style.Properties) *responsive.Value[tokens.Justify] { return &p.JustifyContent }),
	style.PropAlignItems.String():     bind(token(tokens.ParseAlignItems), func(p *style.Properties) *responsive.Value[tokens.AlignItems] { return &p.AlignItems }),
	style.PropAlignContent.String():   bind(token(tokens.ParseAlignContent), func(p *style.Properties) *responsive.Value[tokens.AlignContent] { return &p.AlignContent }),
	style.PropAlignSelf.String():      bind(token(tokens.ParseAlignSelf), func(p *style.Properties) *responsive.Value[tokens.AlignSelf] { return &p.AlignSelf }),
	style.PropFlexWrap.String():       bind(token(tokens.ParseWrap), func(p *style.Properties) *responsive.Value[tokens.Wrap] { return &p.FlexWrap }),
	style.PropFlexGrow.String():       bind(factor, func(p *style.Properties) *responsive.Value[float64] { return &p.FlexGrow }),
	style.PropFlexShrink.String():     bind(factor, func(p *style.Properties) *responsive.Value[float64] { return &p.FlexShrink }),
	style.PropFlexBasis.String():      bind(factor, func(p *style.Properties) *responsive.Value[float64] { return &p.FlexBasis }),

	style.PropGap.String():       spacingProp(func(p *style.Properties) *responsive.Value[tokens.Spacing] { return &p.Gap }),
	style.PropRowGap.String():    spacingProp(func(p *style.Properties) *responsive.Value[tokens.Spacing] { return &p.RowGap }),
	style.PropColumnGap.String(): spacingProp(func(p *style.Properties) *responsive.Value[tokens.Spacing] { return &p.ColumnGap }),

	style.PropMargin.String():           spacingProp(func(p *style.Properties) *responsive.Value[tokens.Spacing] { return &p.Margin }),
	style.PropMarginHorizontal.String(): spacingProp(func(p *style.Properties) *responsive.Value[tokens.Spacing] { return &p.MarginHorizontal }),
	style.PropMarginVertical.String():   spacingProp(func(p *style.Properties) *responsive.Value[tokens.Spacing] { return &p.MarginVertical }),
	style.PropMarginTop.String():        spacingProp(func(p *style.Properties) *responsive.Value[tokens.Spacing] { return &p.MarginTop }),
	style.PropMarginBottom.String():     spacingProp(func(p *style.Properties) *responsive.Value[tokens.Spacing] { return &p.MarginBottom }),
	style.PropMarginLeft.String():       spacingProp(func(p *style.Properties) *responsive.Value[tokens.Spacing] { return &p.MarginLeft }),
	style.PropMarginRight.String():      spacingProp(func(p *style.Properties) *responsive.Value[tokens.Spacing] { return &p.MarginRight }),

	style.PropPadding.String():           spacingProp(func(p *style.Properties) *responsive.Value[tokens.Spacing] { return &p.Padding }),
	style.PropPaddingHorizontal.String(): spacingProp(func(p *style.Properties) *responsive.Value[tokens.Spacing] { return &p.PaddingHorizontal }),
	style.PropPaddingVertical.String():   spacingProp(func(p *style.Properties) *responsive.Value[tokens.Spacing] { return &p.PaddingVertical }),
	style.PropPaddingTop.String():        spacingProp(func(p *style.Properties) *responsive.Value[tokens.Spacing] { return &p.PaddingTop }),
	style.PropPaddingBottom.String():     spacingProp(func(p *style.Properties) *responsive.Value[tokens.Spacing] { return &p.PaddingBottom }),
	style.PropPaddingLeft.String():       spacingProp(func(p *style.Properties) *responsive.Value[tokens.Spacing] { return &p.PaddingLeft }),
	style.PropPaddingRight.String():      spacingProp(func(p *style.Properties) *responsive.Value[tokens.Spacing] { return &p.PaddingRight }),

	style.PropBorderRadius.String():    spacingProp(func(p *style.Properties) *responsive.Value[tokens.Spacing] { return &p.BorderRadius }),
	style.PropShadow.String():          bind(shadow, func(p *style.Properties) *responsive.Value[tokens.Shadow] { return &p.Shadow }),
	style.PropBackgroundColor.String(): bind(color, func(p *style.Properties) *responsive.Value[tokens.Color] { return &p.BackgroundColor }),
	style.PropTextAlign.String():       bind(token(tokens.ParseTextAlign), func(p *style.Properties) *responsive.Value[tokens.TextAlign] { return &p.TextAlign }),
}

var boxDecoders = map[string]propDecoder[layout.BoxProps]{
	"flexGrow":          bind(factor, func(p *layout.BoxProps) *responsive.Value[float64] { return &p.FlexGrow }),
	"flexShrink":        bind(factor, func(p *layout.BoxProps) *responsive.Value[float64] { return &p.FlexShrink }),
	"margin":            bind(spacing, func(p *layout.BoxProps) *responsive.Value[tokens.Spacing] { return &p.Margin }),
	"marginHorizontal":  bind(spacing, func(p *layout.BoxProps) *responsive.Value[tokens.Spacing] { return &p.MarginHorizontal }),
	"marginVertical":    bind(spacing, func(p *layout.BoxProps) *responsive.Value[tokens.Spacing] { return &p.MarginVertical }),
	"padding":           bind(spacing, func(p *layout.BoxProps) *responsive.Value[tokens.Spacing] { return &p.Padding }),
	"paddingHorizontal": bind(spacing, func(p *layout.BoxProps) *responsive.Value[tokens.Spacing] { return &p.PaddingHorizontal }),
	"paddingVertical":   bind(spacing, func(p *layout.BoxProps) *responsive.Value[tokens.Spacing] { return &p.PaddingVertical }),
	"borderRadius":      bind(spacing, func(p *layout.BoxProps) *responsive.Value[tokens.Spacing] { return &p.BorderRadius }),
	"backgroundColor":   bind(color, func(p *layout.BoxProps) *responsive.Value[tokens.Color] { return &p.BackgroundColor }),
	"shadow":            bind(shadow, func(p *layout.BoxProps) *responsive.Value[tokens.Shadow] { return &p.Shadow }),
}

var stackDecoders = map[string]propDecoder[layout.StackProps]{
	"space":           bind(spacing, func(p *layout.StackProps) *responsive.Value[tokens.Spacing] { return &p.Space }),
	"horizontalAlign": bind(word, func(p *layout.StackProps) *responsive.Value[string] { return &p.HorizontalAlign }),
	"verticalAlign":   bind(word, func(p *layout.StackProps) *responsive.Value[string] { return &p.VerticalAlign }),
	"flexGrow":        bind(factor, func(p *layout.StackProps) *responsive.Value[float64] { return &p.FlexGrow }),
	"flexShrink":      bind(factor, func(p *layout.StackProps) *responsive.Value[float64] { return &p.FlexShrink }),
}

var inlineDecoders = map[string]propDecoder[layout.InlineProps]{
	"space":           bind(spacing, func(p *layout.InlineProps) *responsive.Value[tokens.Spacing] { return &p.Space }),
	"horizontalAlign": bind(word, func(p *layout.InlineProps) *responsive.Value[string] { return &p.HorizontalAlign }),
	"verticalAlign":   bind(word, func(p *layout.InlineProps) *responsive.Value[string] { return &p.VerticalAlign }),
	"flexGrow":        bind(factor, func(p *layout.InlineProps) *responsive.Value[float64] { return &p.FlexGrow }),
	"flexShrink":      bind(factor, func(p *layout.InlineProps) *responsive.Value[float64] { return &p.FlexShrink }),
	"wrap":            bind(boolean, func(p *layout.InlineProps) *responsive.Value[bool] { return &p.Wrap }),
}

var textDecoders = map[string]propDecoder[layout.TextProps]{
	"type":  fixed(token(tokens.ParseTextType), func(p *layout.TextProps) *tokens.TextType { return &p.Type }),
	"color": fixed(color, func(p *layout.TextProps) *tokens.Color { return &p.Color }),
	"bold":  fixed(boolean, func(p *layout.TextProps) *bool { return &p.Bold }),
}

// decodeProps applies decoders to every entry of a props mapping. className,
// when non-nil, receives the className entry.
func decodeProps[P any](node *yaml.Node, path string, decoders map[string]propDecoder[P], target *P, className *string) error {
	if node.Kind == 0 {
		return nil
	}
	field := path + ".props"
	if node.Kind != yaml.MappingNode {
		return flexerrors.NewValidationError(field, fmt.Sprintf("line %d: props must be a mapping", node.Line), nil)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		name := field + "." + key.Value

		if key.Value == classNameKey && className != nil {
			if value.Kind != yaml.ScalarNode {
				return flexerrors.NewValidationError(name, fmt.Sprintf("line %d: className must be a string", value.Line), nil)
			}
			*className = value.Value
			continue
		}

		decode, ok := decoders[key.Value]
		if !ok {
			return flexerrors.NewValidationError(name, fmt.Sprintf("line %d: unknown prop %q", key.Line, key.Value), nil)
		}
		if err := decode(target, value); err != nil {
			return flexerrors.NewValidationError(name, fmt.Sprintf("line %d: %v", value.Line, err), err)
		}
	}
	return nil
}
