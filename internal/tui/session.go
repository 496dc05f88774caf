// Package tui holds the interactive surfaces: the timed writing session and
// the history browser.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quilljot/quill/internal/app"
	"github.com/quilljot/quill/internal/constants"
	"github.com/quilljot/quill/internal/export"
	"github.com/quilljot/quill/internal/timer"
	"github.com/quilljot/quill/internal/wordcount"
)

// SessionConfig configures a timed writing session.
type SessionConfig struct {
	App     *app.App
	Mode    constants.Mode
	Minutes int
	// Prompt overrides engine selection when non-empty.
	Prompt string
}

// SessionResult is what the session reports back to the command that ran it.
type SessionResult struct {
	Saved  bool
	Copied bool
	Result app.SaveResult
	Err    error
}

type promptReadyMsg struct {
	prompt string
}

type tickMsg time.Time

type savedMsg struct {
	result app.SaveResult
	copied bool
	err    error
}

// sessionModel is the Bubble Tea model for one timed writing session. The
// countdown is a pointer so ticks survive the model being copied by value.
type sessionModel struct {
	cfg       SessionConfig
	input     textarea.Model
	countdown *timer.Countdown
	styles    styles

	prompt  string
	loading bool
	notice  string
	done    SessionResult

	width  int
	height int
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// NewSession builds the session model. The prompt loads asynchronously so
// the UI comes up immediately with a placeholder.
func NewSession(cfg SessionConfig) tea.Model {
	if cfg.Minutes <= 0 {
		cfg.Minutes = constants.DefaultSessionMinutes
	}

	input := textarea.New()
	input.Placeholder = "Start writing..."
	input.CharLimit = 0
	input.Focus()

	dark := cfg.App.Store.Prefs().Get().DarkMode

	return sessionModel{
		cfg:       cfg,
		input:     input,
		countdown: timer.New(time.Duration(cfg.Minutes) * time.Minute),
		styles:    newStyles(dark),
		loading:   cfg.Prompt == "",
		prompt:    cfg.Prompt,
	}
}

func (m sessionModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink, tick()}
	if m.loading {
		cmds = append(cmds, m.loadPromptCmd())
	}
	return tea.Batch(cmds...)
}

// loadPromptCmd resolves the pool and selects a prompt off the main loop;
// the fetch is bounded, so the command always finishes.
func (m sessionModel) loadPromptCmd() tea.Cmd {
	cfg := m.cfg
	return func() tea.Msg {
		p := cfg.App.NextPrompt(context.Background(), cfg.Mode, time.Now())
		return promptReadyMsg{prompt: p}
	}
}

// saveCmd persists the session. When copy is set the finished entry is also
// placed on the system clipboard as an export block; a clipboard failure
// never loses the save.
func (m sessionModel) saveCmd(copy bool) tea.Cmd {
	cfg := m.cfg
	promptText := m.prompt
	text := m.input.Value()
	return func() tea.Msg {
		result, err := cfg.App.SaveEntry(cfg.Mode, promptText, text, time.Now())
		copied := false
		if err == nil && copy {
			copied = clipboard.WriteAll(export.Block(result.Entry)) == nil
		}
		return savedMsg{result: result, copied: copied, err: err}
	}
}

func (m sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(msg.Width - 4)
		m.input.SetHeight(msg.Height - 10)
		return m, nil

	case promptReadyMsg:
		m.prompt = msg.prompt
		m.loading = false
		return m, nil

	case tickMsg:
		if m.countdown.Cancelled() {
			// A tick scheduled before cancellation; drop it.
			return m, nil
		}
		m.countdown.Tick()
		if m.countdown.Done() {
			return m, m.saveCmd(false)
		}
		return m, tick()

	case savedMsg:
		if msg.err != nil {
			if errors.Is(msg.err, app.ErrEmptyEntry) {
				// Blocking notice, no mutation happened; let the user keep
				// writing or quit explicitly.
				m.notice = msg.err.Error()
				if m.countdown.Done() {
					// Timer ran out with nothing written; nothing to keep.
					m.done = SessionResult{Err: msg.err}
					return m, tea.Quit
				}
				return m, nil
			}
			m.done = SessionResult{Err: msg.err}
			return m, tea.Quit
		}
		m.done = SessionResult{Saved: true, Copied: msg.copied, Result: msg.result}
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.countdown.Cancel()
			m.done = SessionResult{}
			return m, tea.Quit
		case "ctrl+s":
			m.countdown.Cancel()
			return m, m.saveCmd(false)
		case "ctrl+y":
			m.countdown.Cancel()
			return m, m.saveCmd(true)
		case "ctrl+p":
			if m.countdown.Paused() {
				m.countdown.Resume()
			} else {
				m.countdown.Pause()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m sessionModel) View() string {
	title := m.styles.title.Render(fmt.Sprintf("quill — %s session", m.cfg.Mode))

	promptLine := m.styles.faint.Render("Finding you a prompt...")
	if !m.loading {
		promptLine = m.styles.prompt.Render(m.prompt)
	}

	remaining := m.countdown.Remaining()
	timerStyle := m.styles.timer
	if remaining <= 30*time.Second {
		timerStyle = m.styles.timerLow
	}
	clock := timerStyle.Render(fmtDuration(remaining))
	if m.countdown.Paused() {
		clock += m.styles.notice.Render("  (paused)")
	}

	status := m.styles.status.Render(fmt.Sprintf(
		"%d words  ·  ctrl+s save  ·  ctrl+y save+copy  ·  ctrl+p pause  ·  esc discard",
		wordcount.Count(m.input.Value()),
	))

	view := title + "\n\n" + promptLine + "\n\n" + clock + "\n\n" + m.input.View() + "\n\n" + status
	if m.notice != "" {
		view += "\n" + m.styles.notice.Render(m.notice)
	}
	return m.styles.doc.Render(view)
}

// Result extracts the session outcome after the program finishes.
func Result(final tea.Model) SessionResult {
	if m, ok := final.(sessionModel); ok {
		return m.done
	}
	return SessionResult{}
}

func fmtDuration(d time.Duration) string {
	d = d.Round(time.Second)
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", m, s)
}
