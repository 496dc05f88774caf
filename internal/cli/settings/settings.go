package settings

import (
	"fmt"

	"github.com/quilljot/quill/internal/cli"
	"github.com/quilljot/quill/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	DarkMode       *bool   `help:"Use the dark color palette in the TUI."`
	Timezone       *string `help:"IANA timezone for streak day boundaries, or 'Local'."`
	SessionMinutes *int    `help:"Default timed-session length in minutes."`
	PoolURL        *string `help:"Remote prompt-pool document URL."`

	DismissExportReminder bool `help:"Permanently silence the periodic export reminder."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	prefs := ctx.App.Store.Prefs().Get()

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Dark Mode:       %v\n", prefs.DarkMode)
		fmt.Printf("  Timezone:        %s\n", prefs.Timezone)
		fmt.Printf("  Session Minutes: %d\n", prefs.SessionMinutes)
		fmt.Printf("  Pool URL:        %s\n", prefs.PoolURL)
		fmt.Printf("  Export Reminder: %s\n", reminderState(prefs.ExportOfferDismissed))
		return nil
	}

	updated := false
	if c.DarkMode != nil {
		prefs.DarkMode = *c.DarkMode
		updated = true
	}
	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return fmt.Errorf("unknown timezone %q (use an IANA name like America/New_York, or 'Local')", *c.Timezone)
		}
		prefs.Timezone = *c.Timezone
		updated = true
	}
	if c.SessionMinutes != nil {
		if *c.SessionMinutes <= 0 {
			return fmt.Errorf("session minutes must be positive, got %d", *c.SessionMinutes)
		}
		prefs.SessionMinutes = *c.SessionMinutes
		updated = true
	}
	if c.PoolURL != nil {
		prefs.PoolURL = *c.PoolURL
		updated = true
	}
	if c.DismissExportReminder {
		prefs.ExportOfferDismissed = true
		updated = true
	}

	if updated {
		if !ctx.App.Store.Prefs().Save(prefs) {
			return fmt.Errorf("failed to save settings")
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}

func reminderState(dismissed bool) string {
	if dismissed {
		return "dismissed"
	}
	return "enabled"
}
