package main

import (
	"flag"
	"fmt"

	"xkcdterm/internal/config"
	"xkcdterm/internal/nav"
)

type cliArgs struct {
	config    string
	id        int
	random    bool
	file      string
	threshold int
	print     bool
	dump      bool
	log       string
	debug     bool
	version   bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.config, "config", "", "Config file (default $XDG_CONFIG_HOME/xkcdterm/config.yaml)")
	flag.IntVar(&args.id, "id", 0, "Comic number to open (default latest)")
	flag.BoolVar(&args.random, "random", false, "Open a random comic")
	flag.StringVar(&args.file, "file", "", "Open a local image or saved grid instead")
	flag.IntVar(&args.threshold, "threshold", -1, "Brightness below which a pixel is ink (0-255)")
	flag.BoolVar(&args.print, "print", false, "Print one frame for the current terminal and exit")
	flag.BoolVar(&args.dump, "dump", false, "Write the whole glyph grid to stdout and exit")
	flag.StringVar(&args.log, "log", "", "Log file (default $XDG_STATE_HOME/xkcdterm/xkcdterm.log)")
	flag.BoolVar(&args.debug, "debug", false, "Log at debug level")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}

// apply lets command-line flags override the loaded config.
func (a cliArgs) apply(cfg *config.Config) error {
	if a.threshold >= 0 {
		cfg.Threshold = a.threshold
	}
	if a.log != "" {
		cfg.LogFile = a.log
	}
	if a.debug {
		cfg.LogLevel = "debug"
	}
	return cfg.Validate()
}

// start is the first comic to show.
func (a cliArgs) start() (nav.Request, error) {
	switch {
	case a.random && a.id != 0:
		return nav.Request{}, fmt.Errorf("-id and -random are mutually exclusive")
	case a.id < 0:
		return nav.Request{}, fmt.Errorf("invalid comic number %d", a.id)
	case a.random:
		return nav.Request{Kind: nav.Random}, nil
	case a.id > 0:
		return nav.Request{Kind: nav.Jump, ID: a.id}, nil
	}
	return nav.Request{}, nil
}
