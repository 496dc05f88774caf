package entries

import (
	"fmt"

	"github.com/quilljot/quill/internal/cli"
)

type ListCmd struct {
	Limit int `help:"Show at most this many entries (0 = all)." default:"0"`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	entries := ctx.App.Store.Entries().List()
	if len(entries) == 0 {
		fmt.Println("No entries yet. Start one with 'quill write'.")
		return nil
	}

	for i, e := range entries {
		if c.Limit > 0 && i >= c.Limit {
			fmt.Printf("... and %d more\n", len(entries)-i)
			break
		}
		fmt.Println(cli.FormatEntryLine(e))
	}
	return nil
}
