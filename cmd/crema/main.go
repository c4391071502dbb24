package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/crema/internal/cli"
	"github.com/julianstephens/crema/internal/logger"
	"github.com/julianstephens/crema/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/crema/crema.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init   cli.InitCmd   `cmd:"" help:"Initialize crema storage."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Backup cli.BackupCmd `cmd:"" help:"Create, list, or restore backups."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run storage diagnostics."`
	Bean   struct {
		Add    cli.BeanAddCmd    `cmd:"" help:"Add a new bean."`
		List   cli.BeanListCmd   `cmd:"" help:"List all beans."`
		Delete cli.BeanDeleteCmd `cmd:"" help:"Delete a bean."`
	} `cmd:"" help:"Manage coffee beans."`
	Shot struct {
		Add  cli.ShotAddCmd  `cmd:"" help:"Record an espresso shot."`
		List cli.ShotListCmd `cmd:"" help:"List recorded shots."`
	} `cmd:"" help:"Manage espresso shots."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("crema"),
		kong.Description("Espresso shot logger / dialing-in companion"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store: store,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
