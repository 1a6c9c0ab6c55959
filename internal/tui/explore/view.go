package explore

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/flexkit/internal/breakpoint"
	"github.com/alexisbeaulieu97/flexkit/internal/layout"
	"github.com/alexisbeaulieu97/flexkit/internal/ui/components"
)

// View renders the current model state.
func (m Model) View() string {
	var content strings.Builder

	content.WriteString(m.renderHeader())
	content.WriteString("\n\n")

	if m.loadErr != nil {
		content.WriteString(errorStyle.Render("reload failed: " + m.loadErr.Error()))
		content.WriteString("\n\n")
	}

	content.WriteString(m.renderBody())
	content.WriteString(footerStyle.Render(m.help.View(m.keys)))

	return content.String()
}

func (m Model) renderHeader() string {
	name := "flexkit"
	if m.doc != nil && m.doc.Name != "" {
		name = m.doc.Name
	}

	current := m.Breakpoint()
	bands := make([]string, 0, breakpoint.Count)
	for _, bp := range breakpoint.All() {
		if bp == current {
			bands = append(bands, activeStyle.Render(bp.String()))
			continue
		}
		bands = append(bands, statusStyle.Render(bp.String()))
	}

	status := statusStyle.Render(fmt.Sprintf("%s · %.0fpx · ", m.platform, m.width)) +
		strings.Join(bands, statusStyle.Render(" | "))

	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(name), status)
}

func (m Model) renderBody() string {
	if m.renderErr != nil {
		return errorStyle.Render(m.renderErr.Error()) + "\n"
	}

	if m.Mode() == ViewInspect {
		return renderInspect(m.rendered)
	}

	view, err := components.Build(m.rendered)
	if err != nil {
		return errorStyle.Render(err.Error()) + "\n"
	}
	ctx := components.DefaultContext().WithMaxWidth(m.termWidth)
	return view.ViewWithContext(ctx) + "\n"
}

// renderInspect lists every node with its resolved style or class names.
func renderInspect(root layout.RenderedNode) string {
	var b strings.Builder
	_ = root.Walk(func(node layout.RenderedNode) error {
		depth := strings.Count(node.Path, ".")
		indent := strings.Repeat("  ", depth)

		fmt.Fprintf(&b, "%s%s %s\n", indent, pathStyle.Render(node.Path), keyStyle.Render(string(node.Kind)))
		if node.Rendered.ClassName != "" {
			fmt.Fprintf(&b, "%s  %s %s\n", indent, keyStyle.Render("className:"), node.Rendered.ClassName)
		}
		for _, k := range slices.Sorted(maps.Keys(node.Rendered.Style)) {
			fmt.Fprintf(&b, "%s  %s %v\n", indent, keyStyle.Render(k+":"), node.Rendered.Style[k])
		}
		return nil
	})
	return b.String()
}
