package main

import (
	"log/slog"
	"os"

	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/logging"
)

func main() {
	logging.Setup()

	if err := newRootCmd().Execute(); err != nil {
		slog.Error("dbtool failed", "error", err)
		os.Exit(1)
	}
}
