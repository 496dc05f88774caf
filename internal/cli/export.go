package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/quilljot/quill/internal/export"
	"github.com/quilljot/quill/internal/models"
)

type ExportCmd struct {
	ID  string `arg:"" optional:"" help:"Entry ID to export (prefix match). Omit with --all for a bulk export."`
	All bool   `help:"Export every entry with a summary footer."`
	Out string `help:"Write to a file instead of stdout." short:"o" type:"path"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	var output string

	switch {
	case c.All:
		output = export.Bulk(ctx.App.Store.Entries().List(), time.Now())
	case c.ID != "":
		entry, ok := FindEntry(ctx, c.ID)
		if !ok {
			return fmt.Errorf("no entry found with ID %s", c.ID)
		}
		output = export.Block(entry)
	default:
		return fmt.Errorf("specify an entry ID or --all")
	}

	if c.Out != "" {
		if err := os.WriteFile(c.Out, []byte(output), 0600); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		fmt.Printf("Exported to %s\n", c.Out)
		return nil
	}

	fmt.Print(output)
	return nil
}

// FindEntry matches an entry by full ID or unique short prefix.
func FindEntry(ctx *Context, id string) (models.Entry, bool) {
	if entry, ok := ctx.App.Store.Entries().Get(id); ok {
		return entry, true
	}

	var match models.Entry
	matches := 0
	for _, e := range ctx.App.Store.Entries().List() {
		if len(e.ID) >= len(id) && e.ID[:len(id)] == id {
			match = e
			matches++
		}
	}
	if matches == 1 {
		return match, true
	}
	return models.Entry{}, false
}
