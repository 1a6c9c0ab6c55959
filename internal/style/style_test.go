package style

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/flexkit/internal/breakpoint"
	"github.com/alexisbeaulieu97/flexkit/internal/responsive"
	"github.com/alexisbeaulieu97/flexkit/internal/tokens"
	flexerrors "github.com/alexisbeaulieu97/flexkit/pkg/errors"
)

func sampleProperties() Properties {
	return Properties{
		FlexDirection: responsive.Scalar(tokens.DirectionRow),
		Gap:           responsive.Scalar(tokens.SpacingMedium),
		AlignItems:    responsive.Responsive(tokens.AlignItemsStart, tokens.AlignItemsCenter, tokens.AlignItemsCenter),
	}
}

func TestResolveNativeStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		props    Properties
		bp       breakpoint.Breakpoint
		platform tokens.Platform
		want     Style
	}{
		{
			name:     "mixed scalar and tuple at compact",
			props:    sampleProperties(),
			bp:       breakpoint.Compact,
			platform: tokens.PlatformIOS,
			want:     Style{"flexDirection": "row", "gap": 8, "alignItems": "flex-start"},
		},
		{
			name:     "mixed scalar and tuple at expanded",
			props:    sampleProperties(),
			bp:       breakpoint.Expanded,
			platform: tokens.PlatformAndroid,
			want:     Style{"flexDirection": "row", "gap": 8, "alignItems": "center"},
		},
		{
			name: "empty slot contributes nothing",
			props: Properties{
				Padding: responsive.Tuple(responsive.None[tokens.Spacing](), responsive.Some(tokens.SpacingLarge)),
			},
			bp:       breakpoint.Compact,
			platform: tokens.PlatformIOS,
			want:     Style{},
		},
		{
			name: "none token is a zero value",
			props: Properties{
				Padding: responsive.Scalar(tokens.SpacingNone),
			},
			bp:       breakpoint.Medium,
			platform: tokens.PlatformIOS,
			want:     Style{"padding": 0},
		},
		{
			name: "undeclared expanded slot has no native fallback",
			props: Properties{
				Margin: responsive.Responsive(tokens.SpacingSmall, tokens.SpacingMedium),
			},
			bp:       breakpoint.Expanded,
			platform: tokens.PlatformIOS,
			want:     Style{},
		},
		{
			name: "flex factors pass through",
			props: Properties{
				FlexGrow:   responsive.Scalar(3.0),
				FlexShrink: responsive.Scalar(0.0),
				FlexBasis:  responsive.Scalar(120.0),
			},
			bp:       breakpoint.Compact,
			platform: tokens.PlatformAndroid,
			want:     Style{"flexGrow": 3.0, "flexShrink": 0.0, "flexBasis": 120.0},
		},
		{
			name: "high shadow on ios",
			props: Properties{
				Shadow: responsive.Scalar(tokens.ShadowHigh),
			},
			bp:       breakpoint.Compact,
			platform: tokens.PlatformIOS,
			want: Style{
				"shadowColor":   "#000",
				"shadowOffset":  tokens.ShadowOffset{Width: 0, Height: 2},
				"shadowOpacity": 0.25,
				"shadowRadius":  3.84,
			},
		},
		{
			name: "high shadow on android",
			props: Properties{
				Shadow: responsive.Scalar(tokens.ShadowHigh),
			},
			bp:       breakpoint.Compact,
			platform: tokens.PlatformAndroid,
			want:     Style{"elevation": 4},
		},
		{
			name: "background and radius",
			props: Properties{
				BackgroundColor: responsive.Scalar(tokens.ColorError),
				BorderRadius:    responsive.Scalar(tokens.SpacingLarge),
			},
			bp:       breakpoint.Compact,
			platform: tokens.PlatformIOS,
			want:     Style{"backgroundColor": "#FF5252", "borderRadius": 16},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ResolveNativeStyle(tt.props, tt.bp, tt.platform)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestResolveNativeStyleRejectsWeb(t *testing.T) {
	t.Parallel()

	_, err := ResolveNativeStyle(sampleProperties(), breakpoint.Compact, tokens.PlatformWeb)
	require.ErrorIs(t, err, ErrNotNative)
}

func TestResolveNativeStyleFailsFastOnUnknownToken(t *testing.T) {
	t.Parallel()

	props := Properties{
		FlexDirection: responsive.Scalar(tokens.DirectionRow),
		Gap:           responsive.Scalar(tokens.Spacing(42)),
	}

	_, err := ResolveNativeStyle(props, breakpoint.Compact, tokens.PlatformIOS)
	require.ErrorIs(t, err, flexerrors.ErrUnknownToken)

	var resolveErr *flexerrors.ResolveError
	require.ErrorAs(t, err, &resolveErr)
	require.Equal(t, "gap", resolveErr.Property)
}

func TestResolveNativeStyleRejectsNegativeFactor(t *testing.T) {
	t.Parallel()

	props := Properties{FlexGrow: responsive.Scalar(-1.0)}

	_, err := ResolveNativeStyle(props, breakpoint.Compact, tokens.PlatformAndroid)
	require.ErrorIs(t, err, flexerrors.ErrUnknownToken)
}

func TestSpacingIsConsistentAcrossPlatforms(t *testing.T) {
	t.Parallel()

	for _, s := range tokens.Spacings() {
		props := Properties{Gap: responsive.Scalar(s)}

		ios, err := ResolveNativeStyle(props, breakpoint.Compact, tokens.PlatformIOS)
		require.NoError(t, err)
		android, err := ResolveNativeStyle(props, breakpoint.Compact, tokens.PlatformAndroid)
		require.NoError(t, err)

		px, err := s.Pixels()
		require.NoError(t, err)
		require.Equal(t, px, ios["gap"])
		require.Equal(t, ios["gap"], android["gap"])
	}
}

func TestNativeResolverReturnsFreshStyles(t *testing.T) {
	t.Parallel()

	resolver := NativeResolver{Platform: tokens.PlatformIOS, Breakpoint: breakpoint.Compact}
	props := Properties{Shadow: responsive.Scalar(tokens.ShadowLow)}

	first, err := resolver.Resolve(props)
	require.NoError(t, err)
	first["shadowColor"] = "#fff"

	second, err := resolver.Resolve(props)
	require.NoError(t, err)
	require.Equal(t, "#000", second["shadowColor"])
}

func TestResolveWebClassName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		props Properties
		want  string
	}{
		{
			name:  "mixed scalar and tuple",
			props: sampleProperties(),
			want:  "flex-row items-start-max-md items-center-md:max-lg items-center-lg gap-2",
		},
		{
			name:  "empty property set",
			props: Properties{},
			want:  "",
		},
		{
			name: "undeclared expanded slot falls back to medium",
			props: Properties{
				Padding: responsive.Responsive(tokens.SpacingSmall, tokens.SpacingLarge),
			},
			want: "p-1-max-md p-4-md:max-lg p-4-lg",
		},
		{
			name: "explicit empty expanded slot emits nothing",
			props: Properties{
				Padding: responsive.Tuple(
					responsive.Some(tokens.SpacingSmall),
					responsive.Some(tokens.SpacingLarge),
					responsive.None[tokens.Spacing](),
				),
			},
			want: "p-1-max-md p-4-md:max-lg",
		},
		{
			name: "empty compact slot",
			props: Properties{
				MarginHorizontal: responsive.Tuple(
					responsive.None[tokens.Spacing](),
					responsive.Some(tokens.SpacingMedium),
					responsive.Some(tokens.SpacingLarge),
				),
			},
			want: "mx-2-md:max-lg mx-4-lg",
		},
		{
			name: "arbitrary grow value",
			props: Properties{
				FlexGrow: responsive.Scalar(3.0),
			},
			want: "grow-[3]",
		},
		{
			name: "dedicated factor classes",
			props: Properties{
				FlexGrow:   responsive.Scalar(1.0),
				FlexShrink: responsive.Scalar(0.0),
				FlexBasis:  responsive.Responsive(0.0, 1.0, 48.0),
			},
			want: "grow shrink-0 basis-0-max-md basis-px-md:max-lg basis-[48px]-lg",
		},
		{
			name: "shadow color and radius",
			props: Properties{
				BorderRadius:    responsive.Scalar(tokens.SpacingMedium),
				Shadow:          responsive.Scalar(tokens.ShadowHigh),
				BackgroundColor: responsive.Scalar(tokens.ColorDark),
				TextAlign:       responsive.Scalar(tokens.TextAlignCenter),
			},
			want: "rounded-lg shadow-lg bg-slate-900 text-center",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ResolveWebClassName(tt.props)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestResolveWebClassNameFailsFastOnUnknownToken(t *testing.T) {
	t.Parallel()

	props := Properties{
		BackgroundColor: responsive.Responsive(tokens.ColorLight, tokens.Color(99)),
	}

	_, err := ResolveWebClassName(props)
	require.ErrorIs(t, err, flexerrors.ErrUnknownToken)

	var resolveErr *flexerrors.ResolveError
	require.ErrorAs(t, err, &resolveErr)
	require.Equal(t, "backgroundColor", resolveErr.Property)
}

func TestResolversAgreeOnPresence(t *testing.T) {
	t.Parallel()

	props := Properties{
		Padding: responsive.Tuple(
			responsive.Some(tokens.SpacingNone),
			responsive.None[tokens.Spacing](),
			responsive.Some(tokens.SpacingLarge),
		),
	}

	classes, err := WebClasses(props)
	require.NoError(t, err)
	require.Equal(t, []string{"p-0-max-md", "p-4-lg"}, classes)

	want := map[breakpoint.Breakpoint]bool{
		breakpoint.Compact:  true,
		breakpoint.Medium:   false,
		breakpoint.Expanded: true,
	}
	for bp, present := range want {
		native, err := ResolveNativeStyle(props, bp, tokens.PlatformIOS)
		require.NoError(t, err)

		_, ok := native["padding"]
		require.Equal(t, present, ok, "breakpoint %s", bp)
	}
}

func TestVocabulary(t *testing.T) {
	t.Parallel()

	vocabulary := Vocabulary()
	require.IsIncreasing(t, vocabulary)
	require.Contains(t, vocabulary, "flex-row")
	require.Contains(t, vocabulary, "items-start-max-md")
	require.Contains(t, vocabulary, "items-center-md:max-lg")
	require.Contains(t, vocabulary, "gap-x-4-lg")
	require.Contains(t, vocabulary, "basis-px")
	require.Contains(t, vocabulary, "shadow-lg-lg")
	require.Contains(t, vocabulary, "bg-yellow-500-max-md")

	for _, class := range vocabulary {
		require.NotContains(t, class, "[")
	}
}

func TestParseProperty(t *testing.T) {
	t.Parallel()

	for _, prop := range AllProperties() {
		parsed, ok := ParseProperty(prop.String())
		require.True(t, ok)
		require.Equal(t, prop, parsed)
	}

	_, ok := ParseProperty("zIndex")
	require.False(t, ok)
	require.Len(t, bindings, len(AllProperties()))
	for i, b := range bindings {
		require.Equal(t, AllProperties()[i], b.property)
	}
}

func TestShadowRules(t *testing.T) {
	t.Parallel()

	rules, err := ShadowRules()
	require.NoError(t, err)
	require.Len(t, rules, len(tokens.Shadows())*(breakpoint.Count+1))

	require.Contains(t, rules, ".shadow-lg { box-shadow: 0 2px 2px 0 rgba(0, 0, 0, 0.25); }")
	require.Contains(t, rules, ".shadow-none { box-shadow: none; }")
	require.Contains(t, rules, `@media (768px <= width < 1280px) { .shadow-md\:max-lg { box-shadow: 0 1px 1px 0 rgba(0, 0, 0, 0.18); } }`)
	require.Contains(t, rules, "@media (width >= 1280px) { .shadow-md-lg { box-shadow: 0 1px 1px 0 rgba(0, 0, 0, 0.22); } }")
}
