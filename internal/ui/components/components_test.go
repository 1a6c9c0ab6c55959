package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/flexkit/internal/layout"
	"github.com/alexisbeaulieu97/flexkit/internal/responsive"
	"github.com/alexisbeaulieu97/flexkit/internal/style"
	"github.com/alexisbeaulieu97/flexkit/internal/tokens"
)

func render(t *testing.T, host layout.Host, root layout.Node) string {
	t.Helper()

	tree, err := layout.Render(host, root)
	require.NoError(t, err)
	view, err := Build(tree)
	require.NoError(t, err)
	return view.ViewWithContext(DefaultContext())
}

func textNode(content string) layout.Node {
	return layout.Node{
		Props:   layout.TextProps{Type: tokens.TextBody, Color: tokens.ColorDark},
		Content: content,
	}
}

func TestBuildArrangesByDirection(t *testing.T) {
	t.Parallel()

	host := layout.StaticHost{OS: tokens.PlatformIOS, Width: 390}

	column := render(t, host, layout.Node{
		Props:    layout.StackProps{},
		Children: []layout.Node{textNode("one"), textNode("two")},
	})
	require.Equal(t, 2, lipgloss.Height(column))
	require.Equal(t, 3, lipgloss.Width(column))

	row := render(t, host, layout.Node{
		Props:    layout.InlineProps{},
		Children: []layout.Node{textNode("one"), textNode("two")},
	})
	require.Equal(t, 1, lipgloss.Height(row))
	require.Equal(t, "onetwo", row)
}

func TestBuildAppliesGapInCells(t *testing.T) {
	t.Parallel()

	host := layout.StaticHost{OS: tokens.PlatformAndroid, Width: 390}

	row := render(t, host, layout.Node{
		Props:    layout.InlineProps{Space: responsive.Scalar(tokens.SpacingLarge)},
		Children: []layout.Node{textNode("a"), textNode("b")},
	})
	require.Equal(t, "a    b", row)

	column := render(t, host, layout.Node{
		Props:    layout.StackProps{Space: responsive.Scalar(tokens.SpacingLarge)},
		Children: []layout.Node{textNode("a"), textNode("b")},
	})
	require.Equal(t, 4, lipgloss.Height(column))
}

func TestBuildDrawsElevationBorders(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		platform tokens.Platform
		shadow   tokens.Shadow
		radius   bool
		corner   string
	}{
		{"android low", tokens.PlatformAndroid, tokens.ShadowLow, false, "┌"},
		{"ios low rounded", tokens.PlatformIOS, tokens.ShadowLow, true, "╭"},
		{"ios medium", tokens.PlatformIOS, tokens.ShadowMedium, false, "┏"},
		{"android high", tokens.PlatformAndroid, tokens.ShadowHigh, true, "╔"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			props := layout.BoxProps{Shadow: responsive.Scalar(tc.shadow)}
			if tc.radius {
				props.BorderRadius = responsive.Scalar(tokens.SpacingSmall)
			}
			out := render(t, layout.StaticHost{OS: tc.platform}, layout.Node{
				Props:    props,
				Children: []layout.Node{textNode("card")},
			})
			require.True(t, strings.HasPrefix(out, tc.corner), out)
			require.Contains(t, out, "card")
		})
	}
}

func TestBuildWithoutShadowHasNoBorder(t *testing.T) {
	t.Parallel()

	out := render(t, layout.StaticHost{OS: tokens.PlatformIOS}, layout.Node{
		Props:    layout.BoxProps{Shadow: responsive.Scalar(tokens.ShadowNone)},
		Children: []layout.Node{textNode("flat")},
	})
	require.Equal(t, "flat", out)
}

func TestBuildAppliesPadding(t *testing.T) {
	t.Parallel()

	out := render(t, layout.StaticHost{OS: tokens.PlatformIOS}, layout.Node{
		Props:    layout.BoxProps{Padding: responsive.Scalar(tokens.SpacingMedium)},
		Children: []layout.Node{textNode("x")},
	})
	require.Equal(t, 3, lipgloss.Height(out))
	require.Equal(t, 5, lipgloss.Width(out))
}

func TestBuildRejectsWebContainers(t *testing.T) {
	t.Parallel()

	tree, err := layout.Render(layout.StaticHost{OS: tokens.PlatformWeb}, layout.Node{Props: layout.BoxProps{}})
	require.NoError(t, err)

	_, err = Build(tree)
	require.ErrorIs(t, err, ErrNoStyle)
}

func TestBoxSpacingPrecedence(t *testing.T) {
	t.Parallel()

	s := style.Style{
		"padding":           8,
		"paddingHorizontal": 4,
		"paddingLeft":       16,
	}
	require.Equal(t, Spacing{Top: 8, Right: 4, Bottom: 8, Left: 16}, box(s, "padding"))
	require.True(t, box(s, "margin").IsZero())
}

func TestElevationLevel(t *testing.T) {
	t.Parallel()

	for _, shadow := range tokens.Shadows() {
		ios, err := shadow.NativeFields(tokens.PlatformIOS)
		require.NoError(t, err)
		android, err := shadow.NativeFields(tokens.PlatformAndroid)
		require.NoError(t, err)

		require.Equal(t, ElevationLevel(android), ElevationLevel(ios), shadow.String())
		require.Equal(t, int(shadow), ElevationLevel(ios), shadow.String())
	}
}

func TestThemeCells(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	require.Equal(t, 0, theme.Columns(0))
	require.Equal(t, 1, theme.Columns(4))
	require.Equal(t, 4, theme.Columns(16))
	require.Equal(t, 1, theme.Rows(4))
	require.Equal(t, 2, theme.Rows(16))
	require.Equal(t, 1, Theme{}.Columns(4))
}

func TestStackConstructorsSetDirection(t *testing.T) {
	t.Parallel()

	row := HStack(NewText("a"), NewText("b"))
	require.Equal(t, DirectionHorizontal, row.Direction())
	require.Equal(t, "ab", row.View())

	column := VStack(NewText("a"), NewText("b"))
	require.Equal(t, DirectionVertical, column.Direction())
	require.Equal(t, "a\nb", column.View())
}

func TestAppliersAccumulate(t *testing.T) {
	t.Parallel()

	text := NewText("x").
		WithAppliers(Padding(Spacing{Left: 8})).
		WithAppliers(Margin(Spacing{Top: 8}))

	// 8px is two columns of padding and one row of margin.
	view := text.View()
	require.Equal(t, 3, lipgloss.Width(view))
	require.Equal(t, 2, lipgloss.Height(view))
	require.Equal(t, "  x", strings.Split(view, "\n")[1])
}
