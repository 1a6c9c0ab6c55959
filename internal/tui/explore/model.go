// Package explore implements an interactive terminal explorer that resolves a
// layout document while the simulated viewport width and platform change.
package explore

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/flexkit/internal/breakpoint"
	"github.com/alexisbeaulieu97/flexkit/internal/config"
	"github.com/alexisbeaulieu97/flexkit/internal/layout"
	"github.com/alexisbeaulieu97/flexkit/internal/logger"
	"github.com/alexisbeaulieu97/flexkit/internal/tokens"
)

const (
	// WidthStep is how far one narrow or widen key press moves the viewport.
	WidthStep = 32.0
	// MaxWidth bounds the simulated viewport.
	MaxWidth = 2560.0
)

// presetWidths are representative widths for each breakpoint.
var presetWidths = [breakpoint.Count]float64{390, breakpoint.MediumMinWidth, breakpoint.ExpandedMinWidth}

// platformCycle is the order the platform key steps through.
var platformCycle = []tokens.Platform{tokens.PlatformIOS, tokens.PlatformAndroid, tokens.PlatformWeb}

// ViewMode determines which body is rendered.
type ViewMode int

const (
	ViewPreview ViewMode = iota
	ViewInspect
)

// Options configures a Model.
type Options struct {
	Path     string
	Document *config.Document
	// Watcher is optional; without it the document only reloads on demand.
	Watcher *Watcher
	Logger  *logger.Logger
}

// Model is the explorer's bubbletea model.
type Model struct {
	path    string
	doc     *config.Document
	tree    layout.Node
	watcher *Watcher
	log     *logger.Logger

	platform tokens.Platform
	width    float64
	mode     ViewMode

	rendered  layout.RenderedNode
	renderErr error
	loadErr   error

	keys KeyMap
	help help.Model

	termWidth  int
	termHeight int
}

// NewModel creates an explorer for an already loaded document.
func NewModel(opts Options) (Model, error) {
	m := Model{
		path:       opts.Path,
		watcher:    opts.Watcher,
		log:        opts.Logger,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		termWidth:  80,
		termHeight: 24,
	}

	host, err := opts.Document.Host(-1)
	if err != nil {
		return Model{}, err
	}
	m.platform = host.Platform()
	m.width = host.ViewportWidth()

	if err := m.setDocument(opts.Document); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Init starts watching the document.
func (m Model) Init() tea.Cmd {
	return m.watcher.Next()
}

func (m *Model) setDocument(doc *config.Document) error {
	tree, err := doc.Tree()
	if err != nil {
		return err
	}
	m.doc = doc
	m.tree = tree
	m.loadErr = nil
	m.resolve()
	return nil
}

// resolve re-renders the tree for the current platform and width.
func (m *Model) resolve() {
	host := layout.StaticHost{OS: m.platform, Width: m.width}
	m.rendered, m.renderErr = layout.Render(host, m.tree)
	if m.renderErr != nil {
		m.log.Error(m.renderErr, "render failed")
	}
}

// Breakpoint returns the breakpoint of the simulated viewport.
func (m Model) Breakpoint() breakpoint.Breakpoint {
	return breakpoint.Select(m.width)
}

// Width returns the simulated viewport width.
func (m Model) Width() float64 {
	return m.width
}

// Platform returns the platform being resolved.
func (m Model) Platform() tokens.Platform {
	return m.platform
}

// Mode returns the active view mode. Web renders are always inspected
// because they carry classes rather than styles.
func (m Model) Mode() ViewMode {
	if m.platform == tokens.PlatformWeb {
		return ViewInspect
	}
	return m.mode
}

// Rendered returns the latest resolved tree and its error.
func (m Model) Rendered() (layout.RenderedNode, error) {
	return m.rendered, m.renderErr
}
