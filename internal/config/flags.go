package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/novabiz/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path to the local database file
//	-e string   assistant chat-completions endpoint
//	-m string   assistant model name
//	-t int      assistant request timeout in seconds
//
// The function filters os.Args to the flags it knows about, using
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-e", "-m", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database file")
	fs.StringVar(&cfg.AssistantEndpoint, "e", cfg.AssistantEndpoint, "assistant endpoint")
	fs.StringVar(&cfg.AssistantModel, "m", cfg.AssistantModel, "assistant model")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "assistant request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
