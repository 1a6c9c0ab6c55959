package config

import (
	"fmt"

	"github.com/alexisbeaulieu97/flexkit/internal/layout"
	flexerrors "github.com/alexisbeaulieu97/flexkit/pkg/errors"
)

// Tree decodes the document into a layout tree.
func (d *Document) Tree() (layout.Node, error) {
	return buildNode(&d.Root, layout.RootPath)
}

// Host returns the document's render environment. A non-negative width
// override replaces the configured width.
func (d *Document) Host(widthOverride float64) (layout.StaticHost, error) {
	platform, err := d.Settings.PlatformOrDefault()
	if err != nil {
		return layout.StaticHost{}, flexerrors.NewValidationError("settings.platform", err.Error(), err)
	}
	width := d.Settings.Width
	if widthOverride >= 0 {
		width = widthOverride
	}
	return layout.StaticHost{OS: platform, Width: width}, nil
}

func buildNode(spec *NodeSpec, path string) (layout.Node, error) {
	props, err := decodeNodeProps(spec, path)
	if err != nil {
		return layout.Node{}, err
	}

	kind := layout.Kind(spec.Kind)
	if spec.Text != "" && kind != layout.KindText {
		return layout.Node{}, flexerrors.NewValidationError(path+".text", fmt.Sprintf("text is only valid on %s nodes", layout.KindText), nil)
	}
	if len(spec.Children) > 0 && kind == layout.KindText {
		return layout.Node{}, flexerrors.NewValidationError(path+".children", "text nodes cannot have children", nil)
	}

	node := layout.Node{Props: props, Content: spec.Text}
	for i := range spec.Children {
		child, err := buildNode(&spec.Children[i], layout.ChildPath(path, i))
		if err != nil {
			return layout.Node{}, err
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}

func decodeNodeProps(spec *NodeSpec, path string) (any, error) {
	switch layout.Kind(spec.Kind) {
	case layout.KindFlex:
		var props layout.FlexProps
		err := decodeProps(&spec.Props, path, flexDecoders, &props.Properties, &props.ClassName)
		return props, err
	case layout.KindBox:
		var props layout.BoxProps
		err := decodeProps(&spec.Props, path, boxDecoders, &props, &props.ClassName)
		return props, err
	case layout.KindStack:
		var props layout.StackProps
		err := decodeProps(&spec.Props, path, stackDecoders, &props, &props.ClassName)
		return props, err
	case layout.KindInline:
		var props layout.InlineProps
		err := decodeProps(&spec.Props, path, inlineDecoders, &props, &props.ClassName)
		return props, err
	case layout.KindText:
		props := layout.DefaultTextProps()
		err := decodeProps(&spec.Props, path, textDecoders, &props, nil)
		return props, err
	default:
		return nil, flexerrors.NewValidationError(path+".kind", fmt.Sprintf("unknown kind %q", spec.Kind), nil)
	}
}
