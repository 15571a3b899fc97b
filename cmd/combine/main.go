// Command combine concatenates every regular file in the current directory
// into combined_output.txt. It takes no arguments.
package main

import (
	"log/slog"
	"os"

	"github.com/bitfield/combine"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	_, err := combine.New(".").
		WithSelf(os.Args[0]).
		WithLogger(logger).
		Run()
	if err != nil {
		logger.Error("combine failed", "error", err)
		return 1
	}
	return 0
}
