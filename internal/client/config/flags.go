package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/deckkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Only -a, -b, -d, -t and -l are looked at; os.Args is filtered with
// flagx.FilterArgs so that -c/-config and unknown flags do not interfere.
// Invalid values panic.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-b", "-d", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "card database API base URL")
	fs.StringVar(&cfg.StorageDriver, "b", cfg.StorageDriver, "storage driver (sqlite, badger, memory)")
	fs.StringVar(&cfg.StoragePath, "d", cfg.StoragePath, "storage path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
