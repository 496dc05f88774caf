package entries

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/quilljot/quill/internal/cli"
)

type DeleteCmd struct {
	ID  string `arg:"" help:"Entry ID to delete (prefix match)."`
	Yes bool   `help:"Skip the confirmation prompt." short:"y"`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	entry, ok := cli.FindEntry(ctx, c.ID)
	if !ok {
		return fmt.Errorf("no entry found with ID %s", c.ID)
	}

	if !c.Yes {
		var confirmed bool
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Delete entry from %s?", entry.Day())).
			Description(cli.FormatEntryLine(entry)).
			Affirmative("Delete").
			Negative("Keep").
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	if !ctx.App.Store.Entries().Delete(entry.ID) {
		return fmt.Errorf("failed to delete entry %s", entry.ID)
	}

	fmt.Printf("✓ Entry deleted: %s\n", entry.Day())
	return nil
}
