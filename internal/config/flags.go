package config

import (
	"flag"
	"os"

	"github.com/brunohmachado/vitrine/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the fragment server (default from Config)
//	-d string   path of the local database file (default from Config)
//
// The function filters os.Args to the flags it owns, via flagx.FilterArgs,
// to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.FragmentBaseURL, "a", cfg.FragmentBaseURL, "base URL of the fragment server")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
