// Package components renders resolved layout trees in the terminal with
// lipgloss.
//
// # Overview
//
// A preview is a third consumer of resolved native styles, next to the native
// and web renderers. Build turns a layout.RenderedNode into a tree of
// components; rendering converts pixel values to terminal cells through the
// Theme carried by RenderContext:
//
//	tree, _ := layout.Render(host, root)
//	view, _ := components.Build(tree)
//	fmt.Println(view.ViewWithContext(components.DefaultContext()))
//
// # Mapping
//
//   - flexDirection picks a vertical or horizontal Stack.
//   - gap, rowGap and columnGap become blank rows or columns between children.
//   - padding and margin become lipgloss padding and margin.
//   - backgroundColor and text color become lipgloss colors.
//   - Shadow fields (iOS) and elevation (Android) become a border whose weight
//     follows the elevation level; borderRadius rounds the lightest border.
//   - alignItems sets the cross axis position of children.
//
// Web renders carry class names instead of styles and cannot be previewed.
package components
