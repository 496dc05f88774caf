package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quilljot/quill/internal/app"
	"github.com/quilljot/quill/internal/export"
	"github.com/quilljot/quill/internal/models"
)

// historyScreen represents the current screen state.
type historyScreen int

const (
	screenList historyScreen = iota
	screenDetail
)

// entryItem implements list.Item for a journal entry.
type entryItem struct {
	entry models.Entry
}

func (e entryItem) Title() string {
	return fmt.Sprintf("%s  %s  [%s]", e.entry.Day(), e.entry.CreatedAt.Local().Format("15:04"), e.entry.Mode)
}

func (e entryItem) Description() string {
	preview := e.entry.Text
	if len(preview) > 80 {
		preview = preview[:80] + "…"
	}
	return fmt.Sprintf("%d words — %s", e.entry.WordCount, strings.ReplaceAll(preview, "\n", " "))
}

func (e entryItem) FilterValue() string {
	return e.entry.Prompt + " " + e.entry.Text
}

// historyModel is the Bubble Tea model for browsing the archive.
type historyModel struct {
	app    *app.App
	styles styles

	screen   historyScreen
	list     list.Model
	viewport viewport.Model
	current  models.Entry

	// Delete confirmation mode
	deleteActive bool
	deleteEntry  models.Entry

	width  int
	height int
	ready  bool
}

// NewHistory builds the archive browser over the current entries.
func NewHistory(a *app.App) tea.Model {
	entries := a.Store.Entries().List()
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = entryItem{entry: e}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "quill — history"
	l.SetShowHelp(true)
	l.AdditionalShortHelpKeys = historyHelpKeys

	return historyModel{
		app:    a,
		styles: newStyles(a.Store.Prefs().Get().DarkMode),
		screen: screenList,
		list:   l,
	}
}

func historyHelpKeys() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	}
}

func (m historyModel) Init() tea.Cmd {
	return nil
}

func (m historyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width-2, msg.Height-2)
		m.viewport = viewport.New(msg.Width-4, msg.Height-6)
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		if m.deleteActive {
			return m.updateDeleteConfirm(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q":
			if m.screen == screenDetail {
				m.screen = screenList
				return m, nil
			}
			return m, tea.Quit
		case "esc":
			if m.screen == screenDetail {
				m.screen = screenList
				return m, nil
			}
		case "enter":
			if m.screen == screenList {
				if item, ok := m.list.SelectedItem().(entryItem); ok {
					m.current = item.entry
					m.viewport.SetContent(export.Block(item.entry))
					m.viewport.GotoTop()
					m.screen = screenDetail
				}
				return m, nil
			}
		case "d":
			if item, ok := m.selectedEntry(); ok {
				m.deleteActive = true
				m.deleteEntry = item
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.screen {
	case screenList:
		m.list, cmd = m.list.Update(msg)
	case screenDetail:
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

// updateDeleteConfirm handles the y/n confirmation before an entry delete.
// Deletion is irreversible, so nothing is mutated until the user confirms.
func (m historyModel) updateDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.app.Store.Entries().Delete(m.deleteEntry.ID)
		m.deleteActive = false
		m.screen = screenList
		m.reloadList()
		return m, nil
	default:
		m.deleteActive = false
		return m, nil
	}
}

func (m *historyModel) reloadList() {
	entries := m.app.Store.Entries().List()
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = entryItem{entry: e}
	}
	m.list.SetItems(items)
}

func (m historyModel) selectedEntry() (models.Entry, bool) {
	if m.screen == screenDetail {
		return m.current, true
	}
	if item, ok := m.list.SelectedItem().(entryItem); ok {
		return item.entry, true
	}
	return models.Entry{}, false
}

func (m historyModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.deleteActive {
		question := fmt.Sprintf("Delete the entry from %s? This cannot be undone. (y/N)", m.deleteEntry.Day())
		return m.styles.doc.Render(m.styles.notice.Render(question))
	}

	switch m.screen {
	case screenDetail:
		footer := m.styles.status.Render("esc back · d delete · q quit")
		return m.styles.doc.Render(m.viewport.View() + "\n" + footer)
	default:
		return m.list.View()
	}
}
