package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/voyage/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-d string   directory for the durable session database
//	-l string   log level (debug, info, warn, error)
//
// Only these flags are looked at; os.Args is filtered with flagx.FilterArgs
// so -c/-config and anything else pass through untouched.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "directory for the durable session database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
