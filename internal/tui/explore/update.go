package explore

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/flexkit/internal/tokens"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case FileChangedMsg:
		m.log.Debug("document changed on disk")
		return m, tea.Batch(loadDocumentCmd(m.path), m.watcher.Next())

	case DocumentLoadedMsg:
		if msg.Err != nil {
			m.loadErr = msg.Err
			m.log.Error(msg.Err, "reload failed")
			return m, nil
		}
		if err := m.setDocument(msg.Document); err != nil {
			m.loadErr = err
		}
		return m, nil

	case WatchErrorMsg:
		m.loadErr = msg.Err
		m.log.Error(msg.Err, "file watcher stopped")
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		_ = m.watcher.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Narrow):
		m.setWidth(m.width - WidthStep)

	case key.Matches(msg, m.keys.Widen):
		m.setWidth(m.width + WidthStep)

	case key.Matches(msg, m.keys.Compact):
		m.setWidth(presetWidths[0])

	case key.Matches(msg, m.keys.Medium):
		m.setWidth(presetWidths[1])

	case key.Matches(msg, m.keys.Expanded):
		m.setWidth(presetWidths[2])

	case key.Matches(msg, m.keys.Platform):
		m.platform = nextPlatform(m.platform)
		m.resolve()

	case key.Matches(msg, m.keys.Inspect):
		if m.mode == ViewPreview {
			m.mode = ViewInspect
		} else {
			m.mode = ViewPreview
		}

	case key.Matches(msg, m.keys.Reload):
		if m.path != "" {
			return m, loadDocumentCmd(m.path)
		}
	}

	return m, nil
}

func (m *Model) setWidth(width float64) {
	switch {
	case width < 0:
		width = 0
	case width > MaxWidth:
		width = MaxWidth
	}
	if width == m.width {
		return
	}
	m.width = width
	m.resolve()
}

func nextPlatform(current tokens.Platform) tokens.Platform {
	for i, p := range platformCycle {
		if p == current {
			return platformCycle[(i+1)%len(platformCycle)]
		}
	}
	return platformCycle[0]
}
