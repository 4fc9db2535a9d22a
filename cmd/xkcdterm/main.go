package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"xkcdterm/internal/comic"
	"xkcdterm/internal/config"
	"xkcdterm/internal/log"
	"xkcdterm/internal/nav"
	"xkcdterm/internal/tui"
	"xkcdterm/internal/viewport"
)

var version = "dev"

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("xkcdterm %s\n", version)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args cliArgs) error {
	cfg, err := config.Load(args.config)
	if err != nil {
		return err
	}
	if err := args.apply(cfg); err != nil {
		return err
	}
	start, err := args.start()
	if err != nil {
		return err
	}

	closeLog, err := setupLog(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	log.Info("xkcdterm %s starting, log level %s", version, log.GetLevel())

	if err := serve(cfg, args, start); err != nil {
		log.Error("%v", err)
		return err
	}
	return nil
}

func serve(cfg *config.Config, args cliArgs, start nav.Request) error {
	src := comic.NewCache(
		comic.NewHTTPSource(cfg.BaseURL, cfg.RandomURL, cfg.Timeout, cfg.MaxImageWidth),
		cfg.CacheSize,
		cfg.Timeout,
	)

	if args.dump || args.print {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
		defer cancel()
		c, err := loadOnce(ctx, cfg, args, src, start)
		if err != nil {
			return err
		}
		g, err := c.Render(cfg.ThresholdByte())
		if err != nil {
			return err
		}
		if args.dump {
			_, err = g.WriteTo(os.Stdout)
			return err
		}
		_, err = fmt.Fprintln(os.Stdout, tui.Snapshot(c, g, cfg.Viewport(), terminalSize(os.Stdout)))
		return err
	}

	m := tui.New(tui.Options{Config: cfg, Source: src, Start: start, File: args.file})
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	return nil
}

// loadOnce fetches the comic the flags point at without the UI.
func loadOnce(ctx context.Context, cfg *config.Config, args cliArgs, src comic.Source, start nav.Request) (*comic.Comic, error) {
	if args.file != "" {
		src = comic.FileSource{Path: args.file, MaxWidth: cfg.MaxImageWidth}
	}
	if start.Kind == nav.Random {
		return src.Random(ctx)
	}
	return src.Fetch(ctx, start.ID)
}

func terminalSize(f *os.File) viewport.Size {
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return viewport.Size{Rows: 24, Cols: 80}
	}
	return viewport.Size{Rows: h, Cols: w}
}

// setupLog points the logger at the configured file. The terminal is owned
// by the UI, so nothing is logged to stderr.
func setupLog(cfg *config.Config) (func(), error) {
	lvl, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	log.SetLevel(lvl)

	path := cfg.LogFile
	if path == "" {
		if path, err = config.DefaultLogPath(); err != nil {
			return nil, fmt.Errorf("failed to determine log path: %w", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(io.Discard)
		f.Close()
	}, nil
}
