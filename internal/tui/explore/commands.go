package explore

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/flexkit/internal/config"
)

// loadDocumentCmd parses the document at path.
func loadDocumentCmd(path string) tea.Cmd {
	return func() tea.Msg {
		doc, err := config.ParseDocument(path)
		return DocumentLoadedMsg{Document: doc, Err: err}
	}
}
