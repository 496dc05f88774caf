// Package export renders entries as plain text for copying and download.
// The format is one-way: readable by a human, not meant for re-import.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/quilljot/quill/internal/models"
)

const (
	header    = "quill — micro-journal entry"
	separator = "----------------------------------------"

	// dateLayout renders the entry timestamp the way a reader expects to
	// see it, not the way the store keeps it.
	dateLayout = "Monday, January 2, 2006 at 3:04 PM"
)

// Block renders one entry: header, date, prompt, a blank line, the raw text,
// and a trailing separator.
func Block(e models.Entry) string {
	var b strings.Builder
	fmt.Fprintln(&b, header)
	fmt.Fprintf(&b, "Date: %s\n", e.CreatedAt.Format(dateLayout))
	fmt.Fprintf(&b, "Prompt: %s\n", e.Prompt)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, e.Text)
	fmt.Fprintln(&b, separator)
	return b.String()
}

// Bulk concatenates every entry's block and appends a summary footer with
// the entry count, total word count, and export timestamp.
func Bulk(entries []models.Entry, now time.Time) string {
	var b strings.Builder
	totalWords := 0
	for _, e := range entries {
		b.WriteString(Block(e))
		b.WriteString("\n")
		totalWords += e.WordCount
	}

	fmt.Fprintf(&b, "Entries: %d\n", len(entries))
	fmt.Fprintf(&b, "Total words: %d\n", totalWords)
	fmt.Fprintf(&b, "Exported: %s\n", now.Format(dateLayout))
	return b.String()
}
