// Command heroview runs the stadium hero on its own: in a desktop window,
// or as the wasm module embedded in the home page.
package main

import (
	"log/slog"
	"os"

	"github.com/riradoro03/sports-insights-hub/internal/heroview"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	err := heroview.Run(heroview.Config{
		Title:  "The Pitch",
		Width:  1280,
		Height: 720,
		Logger: logger,
	})
	if err != nil {
		logger.Error("Hero exited", "error", err)
		os.Exit(1)
	}
}
