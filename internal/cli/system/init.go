package system

import (
	"fmt"
	"os"

	"github.com/quilljot/quill/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting existing storage before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		path := ctx.App.Store.GetConfigPath()
		if _, err := os.Stat(path); err == nil {
			// Close first to prevent file locking issues, then delete.
			if err := ctx.App.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing storage: %w", err)
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to delete existing storage: %w", err)
			}
			fmt.Printf("Deleted existing storage at: %s\n", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing storage: %w", err)
		}
	}

	if err := ctx.App.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized quill storage at: %s\n", ctx.App.Store.GetConfigPath())

	// Seed preferences so 'settings --list' shows something sensible
	// before the first write session.
	prefs := ctx.App.Store.Prefs().Get()
	if !ctx.App.Store.Prefs().Save(prefs) {
		return fmt.Errorf("failed to seed default preferences")
	}

	fmt.Println("Start your first session with 'quill write'.")
	return nil
}
