package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/client/cli"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/client/config"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	// Diagnostics go to stderr so they never interleave with the roster.
	logger := logging.NewSlogLogger(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: slog.LevelWarn,
	})))

	app, err := cli.NewApp(ctx, cfg, logger)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
