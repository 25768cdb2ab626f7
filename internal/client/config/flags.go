package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/localauth/internal/flagx"
)

// parseFlags applies command-line flags on top of cfg:
//
//	-d string   path of the SQLite database file
//	-l string   log level (debug, info, warn, error)
//
// Other flags are filtered out first so that -c does not trip the parser.
// A malformed flag panics.
func parseFlags(cfg *Config, args []string) {
	fs := flag.NewFlagSet("localauth", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path of the SQLite database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(flagx.FilterArgs(args, []string{"-d", "-l"})); err != nil {
		panic(err)
	}
}
