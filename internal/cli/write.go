package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quilljot/quill/internal/constants"
	"github.com/quilljot/quill/internal/tui"
)

type WriteCmd struct {
	Mode    string `help:"Writing mode: personal or professional." short:"m" default:"personal" enum:"personal,professional"`
	Minutes int    `help:"Session length in minutes (default from settings)." short:"t"`
	Prompt  string `help:"Use this prompt instead of a selected one."`
}

func (c *WriteCmd) Run(ctx *Context) error {
	mode := constants.Mode(c.Mode)

	minutes := c.Minutes
	if minutes <= 0 {
		minutes = ctx.App.Store.Prefs().Get().SessionMinutes
	}

	model := tui.NewSession(tui.SessionConfig{
		App:     ctx.App,
		Mode:    mode,
		Minutes: minutes,
		Prompt:  c.Prompt,
	})

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	result := tui.Result(final)
	if result.Err != nil {
		return result.Err
	}
	if !result.Saved {
		fmt.Println("Session discarded. Nothing was saved.")
		return nil
	}

	save := result.Result
	fmt.Printf("Saved %d words.\n", save.Entry.WordCount)
	if result.Copied {
		fmt.Println("Copied to clipboard.")
	}
	if !save.Persisted {
		fmt.Println("Warning: the entry could not be written to storage.")
	}
	switch {
	case save.StreakChanged:
		fmt.Printf("Streak: %d day(s). Longest: %d.\n", save.Ledger.CurrentStreak, save.Ledger.LongestStreak)
	case save.StreakCredit:
		fmt.Println("Today already counts toward your streak.")
	default:
		fmt.Printf("Write %d or more words to keep your streak going.\n", constants.MinWordsForStreak)
	}

	if ctx.App.ExportNudge(time.Now()) {
		fmt.Println("Your archive only lives on this machine — back it up with 'quill export --all'.")
		fmt.Println("(silence this with 'quill settings --dismiss-export-reminder')")
	}
	return nil
}
