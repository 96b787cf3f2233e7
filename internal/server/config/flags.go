package config

import (
	"flag"
	"os"
	"time"

	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN; empty keeps the in-memory store
//	-s string   session token HMAC secret key
//	-t int      session validity, minutes
//	-f string   teacher credentials seed file
//
// Only the flags handled here are parsed, via flagx.FilterArgs, to avoid
// interference with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ListenAddr, "a", config.ListenAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	sessionValidity := fs.Int("t", int(config.SessionValidityDuration.Minutes()), "session_validity_duration (in minutes)")
	fs.StringVar(&config.TeachersFile, "f", config.TeachersFile, "teacher credentials file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionValidityDuration = time.Duration(*sessionValidity) * time.Minute
}
