package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/facecam/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. Only -a, -d,
// -r and -l are looked at; everything else in os.Args is left for others.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-r", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the camera service")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database")
	refresh := fs.Int("r", int(cfg.RefreshInterval.Seconds()), "background feed refresh interval (in seconds, 0 disables)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RefreshInterval = time.Duration(*refresh) * time.Second
}
