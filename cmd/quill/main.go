package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/quilljot/quill/internal/app"
	"github.com/quilljot/quill/internal/cli"
	"github.com/quilljot/quill/internal/cli/entries"
	"github.com/quilljot/quill/internal/cli/settings"
	"github.com/quilljot/quill/internal/cli/system"
	"github.com/quilljot/quill/internal/constants"
	"github.com/quilljot/quill/internal/errors"
	"github.com/quilljot/quill/internal/logger"
	"github.com/quilljot/quill/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path. Paths ending in .json use a plain-text backend instead of SQLite." type:"path" default:"~/.config/quill/quill.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init   system.InitCmd   `cmd:"" help:"Initialize quill storage."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`

	Write   cli.WriteCmd   `cmd:"" help:"Start a timed writing session." default:"1"`
	Prompt  cli.PromptCmd  `cmd:"" help:"Print a writing prompt without starting a session."`
	History cli.HistoryCmd `cmd:"" help:"Browse past entries interactively."`
	Stats   cli.StatsCmd   `cmd:"" help:"Show streak and archive statistics."`
	Export  cli.ExportCmd  `cmd:"" help:"Export entries as plain text."`

	Entry struct {
		List   entries.ListCmd   `cmd:"" help:"List archived entries." default:"1"`
		Show   entries.ShowCmd   `cmd:"" help:"Show a single entry in full."`
		Search entries.SearchCmd `cmd:"" help:"Search prompts and entry text."`
		Delete entries.DeleteCmd `cmd:"" help:"Delete a single entry."`
		Clear  entries.ClearCmd  `cmd:"" help:"Delete the entire archive."`
	} `cmd:"" help:"Manage the entry archive."`

	Pool struct {
		Sync   cli.PoolSyncCmd   `cmd:"" help:"Fetch and cache the remote prompt pool." default:"1"`
		Status cli.PoolStatusCmd `cmd:"" help:"Show where prompts currently come from."`
	} `cmd:"" help:"Manage the remote prompt pool."`

	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("quill"),
		kong.Description("Micro-journaling companion: timed prompts, word counts, streaks"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	store := storage.New(CLI.Config)
	appCtx := &cli.Context{
		App:   app.New(store),
		Debug: CLI.Debug,
	}

	// Open the store before running the command. The init and doctor
	// commands handle their own opening and reporting.
	if ctx.Selected() != nil {
		switch ctx.Selected().Name {
		case "init", "doctor":
		default:
			errors.Fatal(store.Load())
		}
	}

	errors.Fatal(ctx.Run(appCtx))
}
