package entries

import (
	"fmt"

	"github.com/quilljot/quill/internal/cli"
	"github.com/quilljot/quill/internal/export"
)

type ShowCmd struct {
	ID string `arg:"" help:"Entry ID to show (prefix match)."`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	entry, ok := cli.FindEntry(ctx, c.ID)
	if !ok {
		return fmt.Errorf("no entry found with ID %s", c.ID)
	}

	fmt.Print(export.Block(entry))
	return nil
}
