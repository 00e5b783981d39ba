// Package shell implements the interactive slite shell.
package shell

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/slitedb/slite"
	"github.com/slitedb/slite/internal/log"
	"github.com/slitedb/slite/internal/shell/config"
	"github.com/slitedb/slite/internal/shell/repl"
	"github.com/slitedb/slite/internal/version"
)

// Run runs the slite shell.
func Run(ctx context.Context) error {
	conf := config.MustParse(os.Args)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println(version.ShellVersion())

	flags := slite.OpenExResCode
	if conf.ReadOnly {
		flags |= slite.OpenReadOnly
	} else {
		flags |= slite.OpenReadWrite | slite.OpenCreate
	}

	conn, err := slite.Open(conf.Path, flags)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", conf.Path, err)
	}
	defer conn.Close()

	if err := conn.SetBusyTimeout(conf.BusyTimeout); err != nil {
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	logger := log.Logger{}
	if conf.LogFile != "" {
		file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer file.Close()
		logger = log.NewLogger(file)
	}

	rp := repl.NewRepl(ctx, stop, conf, conn, logger)
	defer rp.Shutdown()
	go func() {
		if err := rp.Start(); err != nil {
			fmt.Println(err)
			stop()
		}
	}()

	<-ctx.Done()
	fmt.Printf("\nGoodbye!\n\n")
	return nil
}
