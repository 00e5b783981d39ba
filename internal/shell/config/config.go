package config

import (
	"fmt"
	"log"

	"github.com/alexflint/go-arg"
	"github.com/slitedb/slite/internal/version"
)

// Config represents the configuration for the slite shell.
type Config struct {
	Path        string `arg:"positional,required" help:"Path to the SQLite database file (a missing file is created unless --read-only is set)"`
	ReadOnly    bool   `arg:"--read-only" help:"Open the database in read-only mode"`
	BusyTimeout int    `arg:"--busy-timeout" help:"Busy timeout in milliseconds applied to the connection" default:"5000"`
	LogFile     string `arg:"--log-file" help:"Append a JSON log entry for every executed query to this file"`
}

func (Config) Version() string {
	return fmt.Sprintf("%s\n", version.ShellVersion())
}

// MustParse parses and validates the configuration from the command
// line arguments. It returns a Config struct or exits the program
// with an error.
func MustParse(args []string) Config {
	cfg := Config{}

	parser, err := arg.NewParser(
		arg.Config{},
		&cfg,
	)
	if err != nil {
		log.Fatal(err)
	}
	parser.MustParse(args[1:])

	return cfg
}
