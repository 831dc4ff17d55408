package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/vidwave/internal/flagx"
)

var knownFlags = []string{"-auth", "-dashboard", "-thumbnail", "-d", "-t", "-l"}

// parseFlags overlays cfg with command-line flags. Flags that belong to other
// components (such as -c) are filtered out first. It panics on malformed
// values.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.AuthURL, "auth", cfg.AuthURL, "auth service base URL")
	fs.StringVar(&cfg.DashboardURL, "dashboard", cfg.DashboardURL, "dashboard service base URL")
	fs.StringVar(&cfg.ThumbnailURL, "thumbnail", cfg.ThumbnailURL, "thumbnail service base URL")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	timeout := fs.Int("t", 0, "request timeout in seconds, 0 for none")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t only overrides when given, so a finer JSON duration survives.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
