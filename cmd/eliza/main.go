package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// Packages
	kong "github.com/alecthomas/kong"
	lipgloss "github.com/charmbracelet/lipgloss"
	termenv "github.com/muesli/termenv"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug bool `name:"debug" help:"Enable debug output"`

	// Configuration
	Config string `name:"config" help:"Path to YAML configuration file" type:"path" optional:""`
	Seed   int64  `name:"seed" help:"Random seed for reproducible replies (0 for time-based)" optional:""`

	// Context
	ctx context.Context
	cfg *Config
}

type CLI struct {
	Globals

	// Commands
	Chat      ChatCmd      `cmd:"" default:"1" help:"Start an interactive chat session"`
	Say       SayCmd       `cmd:"" help:"Generate a single reply"`
	Languages LanguagesCmd `cmd:"" help:"List the embedded languages"`
	Version   VersionCmd   `cmd:"" help:"Show version information"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Bilingual ELIZA chatbot"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{},
	)

	// Honour NO_COLOR and dumb terminals
	if termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Load the configuration file, if any
	cfg, err := LoadConfig(cli.Config)
	cmd.FatalIfErrorf(err)
	cli.Globals.cfg = cfg

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}
