// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelgrid-demo/main.go
// Summary: Terminal demo of the grid engine: schemes, pagination and a scrollbar.
// Usage: texelgrid-demo [-config path] [-log path]

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/framegrace/texelgrid/config"
	"github.com/framegrace/texelgrid/grid"
	"github.com/framegrace/texelgrid/host/termhost"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("texelgrid-demo", flag.ContinueOnError)
	configPath := fs.String("config", "", "Config file (default $XDG_CONFIG_HOME/texelgrid/config.toml)")
	logPath := fs.String("log", "", "Log file, overrides log.file")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}

	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		return err
	}
	if *logPath != "" {
		cfg.Log.File = *logPath
	}
	closeLog, err := setupLogging(cfg.Log.File)
	if err != nil {
		return err
	}
	defer closeLog()
	log.Println("Demo: starting")

	host, err := termhost.New(termhost.Options{
		CellWidth:    cfg.UI.CellWidth,
		TickInterval: cfg.UI.TickInterval,
		ViewerName:   os.Getenv("USER"),
	})
	if err != nil {
		return err
	}
	defer host.Close()

	manager, err := grid.Register(host)
	if err != nil {
		return err
	}
	defer manager.Unregister()

	g, err := buildGUI(host, cfg, host.SetStatus)
	if err != nil {
		return err
	}
	if err := g.main.Open(host.Viewer()); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := host.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("Demo: run failed: %v", err)
		return err
	}
	log.Println("Demo: stopped cleanly")
	return nil
}

// setupLogging sends the standard logger to path, or discards output when
// path is empty so nothing is written over the screen.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(logFile)
	return func() { logFile.Close() }, nil
}
