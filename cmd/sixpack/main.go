// Package main provides the sixpack CLI for participating in and converting experiments.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seatgeek/sixpack-go/config"
	"github.com/seatgeek/sixpack-go/pkg/commands"
	"github.com/seatgeek/sixpack-go/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	lggr, err := newLogger()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = lggr.Sync() }()

	cmds := commands.New(lggr)

	root := &cobra.Command{
		Use:           "sixpack",
		Short:         "Sixpack A/B testing client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		cmds.Participate(),
		cmds.Convert(),
	)

	return root.Execute()
}

// newLogger builds the runtime logger with the level taken from the environment.
func newLogger() (logger.Logger, error) {
	cfg, err := config.LoadEnv()
	if err != nil {
		return nil, fmt.Errorf("load env config: %w", err)
	}

	lvl, err := cfg.Log.ZapLevel()
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	lcfg := logger.Config{Level: lvl}

	return lcfg.New()
}
