package cli

import (
	"fmt"

	"github.com/quilljot/quill/internal/app"
	"github.com/quilljot/quill/internal/models"
)

// Context is passed to every command by kong.
type Context struct {
	App   *app.App
	Debug bool
}

// FormatEntryLine renders one archive row for list output.
func FormatEntryLine(e models.Entry) string {
	return fmt.Sprintf("%s  %s  %-12s  %4d words  %s",
		shortID(e.ID), e.Day(), e.Mode, e.WordCount, truncate(e.Prompt, 48))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
