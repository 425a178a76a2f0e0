package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"tock/app"
	"tock/clock"
	"tock/device/tcell"
	"tock/term"
	"tock/view"

	"github.com/muesli/termenv"
)

type options struct {
	x, y          int
	width, height int
	center        bool
	color         string
	second        bool
	military      bool
	zone          string
	format        string
	logFile       string
	logLevel      string
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("tock", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&opts.x, "x", 1, "column of the top left corner")
	fs.IntVar(&opts.y, "y", 1, "row of the top left corner")
	fs.IntVar(&opts.width, "width", 2, "cell width in columns")
	fs.IntVar(&opts.height, "height", 1, "cell height in rows")
	fs.BoolVar(&opts.center, "center", false, "center the clock, ignores -x and -y")
	fs.StringVar(&opts.color, "color", "green", "ANSI color name, palette index 0-255 or #rrggbb")
	fs.BoolVar(&opts.second, "seconds", false, "show seconds")
	fs.BoolVar(&opts.military, "military", false, "24-hour time")
	fs.StringVar(&opts.zone, "zone", "", "IANA time zone, local time if empty")
	fs.StringVar(&opts.format, "format", clock.DateLayout, "date layout in Go time format")
	fs.StringVar(&opts.logFile, "log", "", "log file, no logging if empty")
	fs.StringVar(&opts.logLevel, "log-level", "INFO", "minimum log level: TRACE, DEBUG, INFO, WARN or ERROR")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

func (opts options) config(profile termenv.Profile) (app.Config, error) {
	color, err := term.ParseColor(opts.color, profile)
	if err != nil {
		return app.Config{}, err
	}
	zone, err := clock.LoadZone(opts.zone)
	if err != nil {
		return app.Config{}, err
	}
	return app.Config{
		View: view.Config{
			X:          opts.x,
			Y:          opts.y,
			W:          opts.width,
			H:          opts.height,
			Zone:       zone,
			Color:      color,
			Second:     opts.second,
			Military:   opts.military,
			DateLayout: opts.format,
		},
		Center:  opts.center,
		Profile: profile,
	}, nil
}

func main() {
	log.SetFlags(0)

	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if err == flag.ErrHelp {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	cfg, err := opts.config(termenv.EnvColorProfile())
	if err != nil {
		log.Fatal(err)
	}

	logs, err := setupLog(opts.logFile, opts.logLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logs.Close()

	device, err := tcell.NewDevice()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open terminal: %v\n", err)
		return
	}

	err = app.Run(device, cfg)
	if cerr := device.Close(); cerr != nil {
		log.Printf("[ERROR] %v", cerr)
	}
	if err != nil {
		log.Printf("[ERROR] %v", err)
		fmt.Fprintln(os.Stderr, err)
	}
}
