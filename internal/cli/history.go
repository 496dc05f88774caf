package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quilljot/quill/internal/tui"
)

func runHistoryTUI(ctx *Context) error {
	model := tui.NewHistory(ctx.App)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("history browser failed: %w", err)
	}
	return nil
}
