package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
)

// Opts with all CLI options
type Opts struct {
	Server   serverCmd   `command:"server" description:"run the backend"`
	Settings settingsCmd `command:"settings" description:"show current settings"`
	Set      setCmd      `command:"set" description:"change settings, as key=value pairs"`
	Preview  previewCmd  `command:"preview" description:"show the prompt for the draft article"`
	Process  processCmd  `command:"process" description:"rewrite the draft article"`
	Fetch    fetchCmd    `command:"fetch" description:"extract article text from a web page into the draft"`
	Feed     feedCmd     `command:"feed" description:"list items of an RSS/Atom feed, load one into the draft"`
	History  historyCmd  `command:"history" description:"show processing history"`
	Theme    themeCmd    `command:"theme" description:"show or set the color theme"`

	Backend string        `short:"b" long:"backend" env:"NEWSDESK_BACKEND" default:"http://localhost:8080" description:"backend base url"`
	User    string        `short:"u" long:"user" env:"NEWSDESK_USER" default:"default_user" description:"user id sent to the backend"`
	State   string        `long:"state" env:"NEWSDESK_STATE" description:"local state file, in user config dir by default"`
	Timeout time.Duration `long:"timeout" env:"NEWSDESK_TIMEOUT" default:"30s" description:"backend request timeout"`

	// common options
	Verbose bool `short:"v" long:"verbose" description:"verbose mode"`
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	parser.SubcommandsOptional = true
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}
	if parser.Active == nil {
		parser.WriteHelp(os.Stderr)
		os.Exit(1)
	}

	color.NoColor = color.NoColor || opts.NoColor
	setupLog(opts.Debug, opts.Verbose || parser.Active.Name == "server")

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts, parser.Active.Name, os.Stdout)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %s failed: %v", parser.Active.Name, err)
		os.Exit(1)
	}
}

// run executes the named command, client commands write their output to out
func run(ctx context.Context, opts Opts, command string, out io.Writer) error {
	if command == "server" {
		log.Printf("[INFO] starting newsdesk server version %s", revision)
		return runServer(ctx, opts.Server, opts.Debug)
	}

	// commands working with local state only, no backend needed
	switch command {
	case "fetch":
		return opts.Fetch.run(ctx, opts, out)
	case "feed":
		return opts.Feed.run(ctx, opts, out)
	case "theme":
		return opts.Theme.run(opts, out)
	case "history":
		if opts.History.Local || opts.History.Clear {
			return opts.History.runLocal(opts, out)
		}
	}

	a, err := bootstrap(ctx, opts)
	if err != nil {
		return err
	}

	switch command {
	case "settings":
		return opts.Settings.run(a, out)
	case "set":
		return opts.Set.run(ctx, a, out)
	case "preview":
		return opts.Preview.run(ctx, a, out)
	case "process":
		return opts.Process.run(ctx, a, out)
	case "history":
		return opts.History.run(ctx, a, out)
	}
	return errors.New("unknown command " + command)
}

// setupLog configures lgr and the std logger. Client commands are quiet unless verbose,
// errors and warnings still go to stderr.
func setupLog(dbg, verbose bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(os.Stderr)}
	if verbose {
		logOpts = []lgr.Option{lgr.Msec, lgr.LevelBraces}
	}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
