package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/pokerhand/cmd/pokerhand/shared"
	"github.com/lox/pokerhand/internal/config"
	"github.com/lox/pokerhand/internal/display"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Config    string `short:"c" type:"path" default:"${config_file}" help:"HCL configuration file"`
	LogLevel  string `help:"Log level (debug|info|warn|error), overrides the config file"`
	Debug     bool   `help:"Enable debug logging"`
	NoColor   bool   `help:"Disable coloured output"`
	NoSymbols bool   `help:"Print suits as letters instead of symbols"`

	stdout io.Writer
	stderr io.Writer
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Classify ClassifyCmd      `cmd:"" help:"Classify exactly five cards"`
	Best     BestCmd          `cmd:"" help:"Choose the strongest five cards from five or more"`
	Showdown ShowdownCmd      `cmd:"" help:"Compare hands and announce the winner"`
	Simulate SimulateCmd      `cmd:"" help:"Deal random showdowns and report hand frequencies"`
}

// env is what a command needs after configuration has been resolved.
type env struct {
	cfg     *config.Config
	logger  *log.Logger
	printer *display.Printer
	out     io.Writer
}

func (g *Globals) setup() (*env, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, err := shared.ParseLevel(g.LogLevel, g.Debug, cfg.Level())
	if err != nil {
		return nil, err
	}
	if g.NoColor {
		cfg.Display.Color = new(bool)
	}
	if g.NoSymbols {
		cfg.Display.Symbols = new(bool)
	}

	out, errOut := g.stdout, g.stderr
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}

	logger := shared.SetupLogger(level, errOut)
	logger.Debug("Loaded configuration", "file", g.Config, "level", level)

	return &env{
		cfg:    cfg,
		logger: logger,
		printer: display.New(out, display.Options{
			Color:   *cfg.Display.Color,
			Symbols: *cfg.Display.Symbols,
		}),
		out: out,
	}, nil
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("pokerhand"),
		kong.Description("Classify, compare and simulate five-card poker hands"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultFile,
		},
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	err = ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
