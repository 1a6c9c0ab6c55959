package tokens

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	flexerrors "github.com/alexisbeaulieu97/flexkit/pkg/errors"
)

func TestSpacingPixels(t *testing.T) {
	t.Parallel()

	want := map[Spacing]int{SpacingNone: 0, SpacingSmall: 4, SpacingMedium: 8, SpacingLarge: 16}
	for _, s := range Spacings() {
		px, err := s.Pixels()
		require.NoError(t, err)
		assert.Equal(t, want[s], px, s.String())
	}
}

func TestSpacingScaleMatchesPixels(t *testing.T) {
	t.Parallel()

	// One utility scale step is 4px, so the class scale and the native pixels
	// must always describe the same physical size.
	for _, s := range Spacings() {
		px, err := s.Pixels()
		require.NoError(t, err)
		scale, err := s.Scale()
		require.NoError(t, err)
		assert.Equal(t, itoa4(px), scale, s.String())
	}
}

func itoa4(px int) string {
	return FormatFactor(float64(px / 4))
}

func TestParseRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range Spacings() {
		parsed, err := ParseSpacing(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
	for _, c := range Colors() {
		parsed, err := ParseColor(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
	for _, j := range Justifies() {
		parsed, err := ParseJustify(j.String())
		require.NoError(t, err)
		assert.Equal(t, j, parsed)
	}
}

func TestUnknownTokensFailFast(t *testing.T) {
	t.Parallel()

	_, err := ParseSpacing("huge")
	require.ErrorIs(t, err, flexerrors.ErrUnknownToken)

	var tokenErr *flexerrors.TokenError
	require.ErrorAs(t, err, &tokenErr)
	assert.Equal(t, "spacing", tokenErr.Category)
	assert.Equal(t, "huge", tokenErr.Value)

	_, err = Spacing(42).Pixels()
	require.ErrorIs(t, err, flexerrors.ErrUnknownToken)

	_, err = Color(-1).Hex()
	require.ErrorIs(t, err, flexerrors.ErrUnknownToken)

	_, err = Shadow(9).NativeFields(PlatformIOS)
	require.ErrorIs(t, err, flexerrors.ErrUnknownToken)

	_, err = Direction(5).Class()
	require.ErrorIs(t, err, flexerrors.ErrUnknownToken)

	_, err = ParsePlatform("desktop")
	require.ErrorIs(t, err, flexerrors.ErrUnknownToken)
}

func TestColorHex(t *testing.T) {
	t.Parallel()

	cases := map[Color]string{
		ColorLight:   "#fafafa",
		ColorDark:    "#121212",
		ColorWhite:   "#fff",
		ColorBlack:   "#000",
		ColorError:   "#FF5252",
		ColorSuccess: "#4CAF50",
		ColorWarning: "#FF9800",
	}
	for color, hex := range cases {
		got, err := color.Hex()
		require.NoError(t, err)
		assert.Equal(t, hex, got)

		class, err := color.BackgroundClass()
		require.NoError(t, err)
		assert.NotEmpty(t, class)
	}
}

func TestTextColorHex(t *testing.T) {
	t.Parallel()

	dark, err := ColorDark.TextHex()
	require.NoError(t, err)
	assert.Equal(t, "#000", dark)

	light, err := ColorLight.TextHex()
	require.NoError(t, err)
	assert.Equal(t, "#fff", light)

	_, err = ColorWhite.TextHex()
	require.ErrorIs(t, err, flexerrors.ErrUnknownToken)
}

func TestShadowPerPlatform(t *testing.T) {
	t.Parallel()

	ios, err := ShadowHigh.NativeFields(PlatformIOS)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"shadowColor":   "#000",
		"shadowOffset":  ShadowOffset{Width: 0, Height: 2},
		"shadowOpacity": 0.25,
		"shadowRadius":  3.84,
	}, ios)

	android, err := ShadowHigh.NativeFields(PlatformAndroid)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"elevation": 4}, android)

	web, err := ShadowHigh.BoxShadow()
	require.NoError(t, err)
	assert.Equal(t, "0 2px 2px 0 rgba(0, 0, 0, 0.25)", web)

	low, err := ShadowLow.NativeFields(PlatformAndroid)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"elevation": 1}, low)

	for _, platform := range []Platform{PlatformIOS, PlatformAndroid} {
		none, err := ShadowNone.NativeFields(platform)
		require.NoError(t, err)
		assert.Empty(t, none)
	}
}

func TestShadowNativeFieldsRejectsWeb(t *testing.T) {
	t.Parallel()

	for _, shadow := range Shadows() {
		_, err := shadow.NativeFields(PlatformWeb)
		require.ErrorIs(t, err, flexerrors.ErrUnknownToken, shadow.String())
	}
}

func TestShadowFieldsAreFresh(t *testing.T) {
	t.Parallel()

	first, err := ShadowMedium.NativeFields(PlatformIOS)
	require.NoError(t, err)
	first["shadowColor"] = "#fff"

	second, err := ShadowMedium.NativeFields(PlatformIOS)
	require.NoError(t, err)
	assert.Equal(t, "#000", second["shadowColor"])
}

func TestFactorClass(t *testing.T) {
	t.Parallel()

	cases := []struct {
		axis  string
		value float64
		want  string
	}{
		{FactorGrow, 0, "grow-0"},
		{FactorGrow, 1, "grow"},
		{FactorGrow, 3, "grow-[3]"},
		{FactorShrink, 0, "shrink-0"},
		{FactorShrink, 1, "shrink"},
		{FactorShrink, 2.5, "shrink-[2.5]"},
		{FactorBasis, 0, "basis-0"},
		{FactorBasis, 1, "basis-px"},
		{FactorBasis, 120, "basis-[120px]"},
	}
	for _, tc := range cases {
		got, err := FactorClass(tc.axis, tc.value)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	for _, bad := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := FactorClass(FactorGrow, bad)
		require.ErrorIs(t, err, flexerrors.ErrUnknownToken)
	}
	_, err := FactorClass("order", 1)
	require.Error(t, err)
}

func TestTextType(t *testing.T) {
	t.Parallel()

	size, err := TextTitle.FontSize()
	require.NoError(t, err)
	assert.Equal(t, 24, size)

	line, err := TextCaption.LineHeight()
	require.NoError(t, err)
	assert.Equal(t, 16, line)

	_, err = ParseTextType("headline")
	require.Error(t, err)
}

func TestPlatform(t *testing.T) {
	t.Parallel()

	p, err := ParsePlatform("android")
	require.NoError(t, err)
	assert.True(t, p.IsNative())
	assert.False(t, PlatformWeb.IsNative())
	assert.Equal(t, "ios", PlatformIOS.String())
}
