package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"keycalc/app"
	"keycalc/calc"
	"keycalc/hal"
)

func main() {
	screen := hal.ScreenConfig{Width: calc.ScreenWidth, Height: calc.ScreenHeight}
	headless := hal.HeadlessConfig{ScreenConfig: screen}
	window := hal.WindowConfig{ScreenConfig: screen, Title: "Calculator"}

	var appCfg app.Config
	var verbose bool
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&appCfg.Script, "press", "", "Keys to click one per frame, e.g. \"12+3=\".")
	flag.IntVar(&window.Scale, "scale", 1, "Window scale factor.")
	flag.BoolVar(&verbose, "v", false, "Log every key press.")
	flag.Parse()

	if verbose {
		appCfg.LogLevel = slog.LevelDebug
	}
	newApp := func(h hal.HAL) (func() error, error) {
		return app.New(h, appCfg)
	}

	if headless.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, headless, newApp); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(window, newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
