package main

import (
	"log/slog"
	"os"

	"github.com/dasdy/layerlens/cmd/layerlens"
	"github.com/dasdy/layerlens/logging"
)

func main() {
	slog.SetDefault(logging.NewLogger(os.Stderr, false))

	layerlens.Execute()
}
