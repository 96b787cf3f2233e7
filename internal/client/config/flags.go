package config

import (
	"flag"
	"os"
	"time"

	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the roster service (default from Config)
//	-d string   local database path (default from Config)
//	-t int      notification time-to-live in seconds (default from Config)
//
// Only the flags handled here are parsed, via flagx.FilterArgs, to avoid
// interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the roster service")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local database path")
	ttl := fs.Int("t", int(cfg.NotificationTTL.Seconds()), "notification time-to-live (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.NotificationTTL = time.Duration(*ttl) * time.Second
}
