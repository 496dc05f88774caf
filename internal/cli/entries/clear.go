package entries

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/quilljot/quill/internal/cli"
)

// clearPhrase must be typed verbatim before the archive is wiped. Clearing
// is unrecoverable, so a single y/N is not enough.
const clearPhrase = "DELETE ALL"

type ClearCmd struct {
	Force bool `help:"Skip both confirmation prompts. Unrecoverable."`
}

func (c *ClearCmd) Run(ctx *cli.Context) error {
	count, words := ctx.App.Store.Entries().Totals()
	if count == 0 {
		fmt.Println("The archive is already empty.")
		return nil
	}

	if !c.Force {
		var confirmed bool
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Delete all %d entries (%d words)?", count, words)).
			Description("This cannot be undone. Consider 'quill export --all' first.").
			Affirmative("Continue").
			Negative("Cancel").
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Clear cancelled.")
			return nil
		}

		var phrase string
		err = huh.NewInput().
			Title(fmt.Sprintf("Type %q to confirm", clearPhrase)).
			Value(&phrase).
			Validate(func(s string) error {
				if s != clearPhrase {
					return fmt.Errorf("type %q exactly, or press ctrl+c to cancel", clearPhrase)
				}
				return nil
			}).
			Run()
		if err != nil {
			fmt.Println("Clear cancelled.")
			return nil
		}
	}

	if !ctx.App.Store.Entries().Clear() {
		return fmt.Errorf("failed to clear the archive")
	}

	fmt.Printf("✓ Archive cleared: %d entries removed.\n", count)
	return nil
}
