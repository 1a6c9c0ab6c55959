package breakpoint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectThresholds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		width float64
		want  Breakpoint
	}{
		{width: 0, want: Compact},
		{width: 320, want: Compact},
		{width: 767, want: Compact},
		{width: 767.9, want: Compact},
		{width: 768, want: Medium},
		{width: 1024, want: Medium},
		{width: 1279, want: Medium},
		{width: 1280, want: Expanded},
		{width: 4096, want: Expanded},
		{width: -10, want: Compact},
		{width: math.NaN(), want: Compact},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Select(tc.width), "width %v", tc.width)
	}
}

func TestSelectIsMonotonic(t *testing.T) {
	t.Parallel()

	previous := Select(0)
	for width := 0.0; width <= 2000; width += 0.5 {
		current := Select(width)
		require.GreaterOrEqual(t, int(current), int(previous), "width %v", width)
		previous = current
	}
}

func TestTags(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "max-md", Compact.Tag())
	assert.Equal(t, "md:max-lg", Medium.Tag())
	assert.Equal(t, "lg", Expanded.Tag())
	assert.Panics(t, func() { _ = Breakpoint(7).Tag() })
}

func TestMediaQueriesMatchThresholds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "(width < 768px)", Compact.MediaQuery())
	assert.Equal(t, "(768px <= width < 1280px)", Medium.MediaQuery())
	assert.Equal(t, "(width >= 1280px)", Expanded.MediaQuery())
	assert.Panics(t, func() { _ = Breakpoint(-1).MediaQuery() })
}

func TestIndexMatchesSlotOrder(t *testing.T) {
	t.Parallel()

	for i, bp := range All() {
		assert.Equal(t, i, bp.Index())
		assert.True(t, bp.Valid())
	}
	assert.False(t, Breakpoint(-1).Valid())
	assert.Equal(t, "medium", Medium.String())
}
