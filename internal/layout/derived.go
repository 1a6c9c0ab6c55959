package layout

import (
	"github.com/alexisbeaulieu97/flexkit/internal/responsive"
	"github.com/alexisbeaulieu97/flexkit/internal/style"
	"github.com/alexisbeaulieu97/flexkit/internal/tokens"
	flexerrors "github.com/alexisbeaulieu97/flexkit/pkg/errors"
)

// StackProps lays children out vertically.
type StackProps struct {
	Space           responsive.Value[tokens.Spacing]
	HorizontalAlign responsive.Value[string]
	VerticalAlign   responsive.Value[string]
	FlexGrow        responsive.Value[float64]
	FlexShrink      responsive.Value[float64]
	ClassName       string
}

// InlineProps lays children out horizontally.
type InlineProps struct {
	Space           responsive.Value[tokens.Spacing]
	HorizontalAlign responsive.Value[string]
	VerticalAlign   responsive.Value[string]
	FlexGrow        responsive.Value[float64]
	FlexShrink      responsive.Value[float64]
	Wrap            responsive.Value[bool]
	ClassName       string
}

// BoxProps is the spacing and surface subset of FlexProps.
type BoxProps struct {
	FlexGrow          responsive.Value[float64]
	FlexShrink        responsive.Value[float64]
	Margin            responsive.Value[tokens.Spacing]
	MarginHorizontal  responsive.Value[tokens.Spacing]
	MarginVertical    responsive.Value[tokens.Spacing]
	Padding           responsive.Value[tokens.Spacing]
	PaddingHorizontal responsive.Value[tokens.Spacing]
	PaddingVertical   responsive.Value[tokens.Spacing]
	BorderRadius      responsive.Value[tokens.Spacing]
	BackgroundColor   responsive.Value[tokens.Color]
	Shadow            responsive.Value[tokens.Shadow]
	ClassName         string
}

var (
	stackHorizontalAlign = map[string]tokens.AlignItems{
		"left":    tokens.AlignItemsStart,
		"center":  tokens.AlignItemsCenter,
		"right":   tokens.AlignItemsEnd,
		"stretch": tokens.AlignItemsStretch,
	}
	stackVerticalAlign = map[string]tokens.Justify{
		"top":           tokens.JustifyStart,
		"center":        tokens.JustifyCenter,
		"bottom":        tokens.JustifyEnd,
		"space-between": tokens.JustifySpaceBetween,
		"space-around":  tokens.JustifySpaceAround,
	}
	inlineHorizontalAlign = map[string]tokens.Justify{
		"left":          tokens.JustifyStart,
		"center":        tokens.JustifyCenter,
		"right":         tokens.JustifyEnd,
		"space-between": tokens.JustifySpaceBetween,
		"space-around":  tokens.JustifySpaceAround,
	}
	inlineVerticalAlign = map[string]tokens.AlignItems{
		"stretch": tokens.AlignItemsStretch,
		"top":     tokens.AlignItemsStart,
		"center":  tokens.AlignItemsCenter,
		"bottom":  tokens.AlignItemsEnd,
	}
)

// translate rewrites every present slot of v through table.
func translate[T any](category string, v responsive.Value[string], table map[string]T) (responsive.Value[T], error) {
	return responsive.Map(v, func(name string) (T, error) {
		token, ok := table[name]
		if !ok {
			var zero T
			return zero, flexerrors.NewTokenError(category, name)
		}
		return token, nil
	})
}

func wrapMode(wrap bool) (tokens.Wrap, error) {
	if wrap {
		return tokens.WrapWrap, nil
	}
	return tokens.WrapNone, nil
}

// StackFlexProps translates Stack props into Flex props.
func StackFlexProps(props StackProps) (FlexProps, error) {
	alignItems, err := translate("stack horizontal align", props.HorizontalAlign, stackHorizontalAlign)
	if err != nil {
		return FlexProps{}, err
	}
	justify, err := translate("stack vertical align", props.VerticalAlign, stackVerticalAlign)
	if err != nil {
		return FlexProps{}, err
	}

	return FlexProps{
		Properties: style.Properties{
			FlexDirection:  responsive.Scalar(tokens.DirectionColumn),
			Gap:            props.Space,
			AlignItems:     alignItems,
			JustifyContent: justify,
			FlexGrow:       props.FlexGrow,
			FlexShrink:     props.FlexShrink,
		},
		ClassName: props.ClassName,
	}, nil
}

// InlineFlexProps translates Inline props into Flex props. An unset Wrap
// resolves to nowrap so every platform states the wrap mode explicitly.
func InlineFlexProps(props InlineProps) (FlexProps, error) {
	justify, err := translate("inline horizontal align", props.HorizontalAlign, inlineHorizontalAlign)
	if err != nil {
		return FlexProps{}, err
	}
	alignItems, err := translate("inline vertical align", props.VerticalAlign, inlineVerticalAlign)
	if err != nil {
		return FlexProps{}, err
	}
	wrapping := props.Wrap
	if !wrapping.IsSet() {
		wrapping = responsive.Scalar(false)
	}
	wrap, err := responsive.Map(wrapping, wrapMode)
	if err != nil {
		return FlexProps{}, err
	}

	return FlexProps{
		Properties: style.Properties{
			FlexDirection:  responsive.Scalar(tokens.DirectionRow),
			Gap:            props.Space,
			AlignItems:     alignItems,
			JustifyContent: justify,
			FlexWrap:       wrap,
			FlexGrow:       props.FlexGrow,
			FlexShrink:     props.FlexShrink,
		},
		ClassName: props.ClassName,
	}, nil
}

// BoxFlexProps translates Box props into Flex props.
func BoxFlexProps(props BoxProps) FlexProps {
	return FlexProps{
		Properties: style.Properties{
			FlexGrow:          props.FlexGrow,
			FlexShrink:        props.FlexShrink,
			Margin:            props.Margin,
			MarginHorizontal:  props.MarginHorizontal,
			MarginVertical:    props.MarginVertical,
			Padding:           props.Padding,
			PaddingHorizontal: props.PaddingHorizontal,
			PaddingVertical:   props.PaddingVertical,
			BorderRadius:      props.BorderRadius,
			BackgroundColor:   props.BackgroundColor,
			Shadow:            props.Shadow,
		},
		ClassName: props.ClassName,
	}
}

// Stack resolves a vertical stack.
func Stack(host Host, props StackProps) (Rendered, error) {
	flex, err := StackFlexProps(props)
	if err != nil {
		return Rendered{}, err
	}
	return Flex(host, flex)
}

// Inline resolves a horizontal row.
func Inline(host Host, props InlineProps) (Rendered, error) {
	flex, err := InlineFlexProps(props)
	if err != nil {
		return Rendered{}, err
	}
	return Flex(host, flex)
}

// Box resolves a spacing and surface container.
func Box(host Host, props BoxProps) (Rendered, error) {
	return Flex(host, BoxFlexProps(props))
}
