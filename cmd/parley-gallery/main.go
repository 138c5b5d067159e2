package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/parley-tui/parley/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override preferences path (optional)")
	logFile := flag.String("log", "", "write debug logs to this file (optional)")
	tickMS := flag.Int("tick", 0, "UI refresh interval in milliseconds (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		LogFile:    *logFile,
	}
	if ms := *tickMS; ms > 0 {
		opts.Tick = time.Duration(ms) * time.Millisecond
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "parley-gallery: %v\n", err)
		return 1
	}
	return 0
}
