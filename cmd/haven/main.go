package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/havenlocal/haven/internal/buildinfo"
	"github.com/havenlocal/haven/internal/cli"
	"github.com/havenlocal/haven/internal/config"
	"github.com/havenlocal/haven/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
