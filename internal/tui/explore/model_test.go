package explore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/flexkit/internal/breakpoint"
	"github.com/alexisbeaulieu97/flexkit/internal/config"
	"github.com/alexisbeaulieu97/flexkit/internal/tokens"
)

const sampleYAML = `version: "1.0.0"
name: sample
settings:
  platform: ios
  width: 400
root:
  kind: stack
  props:
    space: [small, large]
  children:
    - kind: text
      text: Hello
    - kind: box
      props:
        padding: medium
        shadow: [none, low, high]
`

func newTestModel(t *testing.T, path string) Model {
	t.Helper()

	doc, err := config.Parse("sample.yaml", []byte(sampleYAML))
	require.NoError(t, err)

	m, err := NewModel(Options{Path: path, Document: doc})
	require.NoError(t, err)
	return m
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()

	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		updated, ok := next.(Model)
		require.True(t, ok)
		m = updated
	}
	return m
}

func TestNewModelUsesDocumentSettings(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "")
	assert.Equal(t, tokens.PlatformIOS, m.Platform())
	assert.InDelta(t, 400.0, m.Width(), 0)
	assert.Equal(t, breakpoint.Compact, m.Breakpoint())

	rendered, err := m.Rendered()
	require.NoError(t, err)
	assert.Equal(t, 4, rendered.Rendered.Style["gap"])
}

func TestWidthKeysMoveAcrossBreakpoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		keys  []string
		width float64
		bp    breakpoint.Breakpoint
	}{
		{name: "widen", keys: []string{"right"}, width: 400 + WidthStep, bp: breakpoint.Compact},
		{name: "narrow", keys: []string{"left", "h"}, width: 400 - 2*WidthStep, bp: breakpoint.Compact},
		{name: "medium preset", keys: []string{"2"}, width: 768, bp: breakpoint.Medium},
		{name: "expanded preset", keys: []string{"3"}, width: 1280, bp: breakpoint.Expanded},
		{name: "compact preset", keys: []string{"3", "1"}, width: 390, bp: breakpoint.Compact},
		{name: "one step below medium", keys: []string{"2", "left"}, width: 768 - WidthStep, bp: breakpoint.Compact},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := press(t, newTestModel(t, ""), tt.keys...)
			assert.InDelta(t, tt.width, m.Width(), 0)
			assert.Equal(t, tt.bp, m.Breakpoint())
		})
	}
}

func TestWidthIsClamped(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "")
	for range 20 {
		m = press(t, m, "left")
	}
	assert.InDelta(t, 0.0, m.Width(), 0)
}

func TestResolutionFollowsBreakpoint(t *testing.T) {
	t.Parallel()

	m := press(t, newTestModel(t, ""), "2")
	rendered, err := m.Rendered()
	require.NoError(t, err)
	assert.Equal(t, 16, rendered.Rendered.Style["gap"])

	// the expanded slot of space is unset, so native gap disappears
	m = press(t, m, "3")
	rendered, err = m.Rendered()
	require.NoError(t, err)
	assert.NotContains(t, rendered.Rendered.Style, "gap")
}

func TestPlatformKeyCyclesAndForcesInspect(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "")
	assert.Equal(t, ViewPreview, m.Mode())

	m = press(t, m, "p")
	assert.Equal(t, tokens.PlatformAndroid, m.Platform())
	assert.Equal(t, ViewPreview, m.Mode())

	m = press(t, m, "p")
	assert.Equal(t, tokens.PlatformWeb, m.Platform())
	assert.Equal(t, ViewInspect, m.Mode())

	rendered, err := m.Rendered()
	require.NoError(t, err)
	assert.Contains(t, rendered.Rendered.ClassName, "flex-col")
	assert.Contains(t, m.View(), "className:")

	m = press(t, m, "p")
	assert.Equal(t, tokens.PlatformIOS, m.Platform())
}

func TestInspectToggle(t *testing.T) {
	t.Parallel()

	m := press(t, newTestModel(t, ""), "i")
	assert.Equal(t, ViewInspect, m.Mode())

	view := m.View()
	assert.Contains(t, view, "root.children[1]")
	assert.Contains(t, view, "padding:")

	m = press(t, m, "i")
	assert.Equal(t, ViewPreview, m.Mode())
	assert.Contains(t, m.View(), "Hello")
}

func TestViewHeaderShowsEnvironment(t *testing.T) {
	t.Parallel()

	view := newTestModel(t, "").View()
	assert.Contains(t, view, "sample")
	assert.Contains(t, view, "ios")
	assert.Contains(t, view, "400px")
	assert.Contains(t, view, "compact")
}

func TestWindowSizeMsg(t *testing.T) {
	t.Parallel()

	next, cmd := newTestModel(t, "").Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Nil(t, cmd)

	m, ok := next.(Model)
	require.True(t, ok)
	assert.Equal(t, 120, m.termWidth)
	assert.Equal(t, 40, m.termHeight)
}

func TestQuitKey(t *testing.T) {
	t.Parallel()

	_, cmd := newTestModel(t, "").Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestReloadReadsDocument(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	m := newTestModel(t, path)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	require.NotNil(t, cmd)

	msg, ok := cmd().(DocumentLoadedMsg)
	require.True(t, ok)
	require.NoError(t, msg.Err)
	assert.Equal(t, "sample", msg.Document.Name)
}

func TestDocumentLoadedMsg(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "")

	next, _ := m.Update(DocumentLoadedMsg{Err: errors.New("broken yaml")})
	failed := next.(Model)
	assert.Contains(t, failed.View(), "reload failed: broken yaml")

	doc, err := config.Parse("sample.yaml", []byte(sampleYAML))
	require.NoError(t, err)
	doc.Name = "renamed"

	next, _ = failed.Update(DocumentLoadedMsg{Document: doc})
	reloaded := next.(Model)
	assert.NotContains(t, reloaded.View(), "reload failed")
	assert.Contains(t, reloaded.View(), "renamed")
}

func TestWatchErrorMsg(t *testing.T) {
	t.Parallel()

	next, _ := newTestModel(t, "").Update(WatchErrorMsg{Err: errors.New("too many open files")})
	assert.Contains(t, next.View(), "too many open files")
}

func TestWatcherReportsWrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	next := w.Next()
	require.NotNil(t, next)
	done := make(chan tea.Msg, 1)
	go func() { done <- next() }()

	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	msg := <-done
	changed, ok := msg.(FileChangedMsg)
	require.True(t, ok)
	assert.Equal(t, w.Path(), changed.Path)
}

func TestNilWatcher(t *testing.T) {
	t.Parallel()

	var w *Watcher
	assert.Nil(t, w.Next())
	assert.NoError(t, w.Close())
}
