// Package commands provides the CLI commands of the sixpack client.
//
// There are two ways to use commands from this package:
//
// 1. Via the Commands factory (recommended for most use cases):
//
//	commands := commands.New(lggr)
//	app.AddCommand(
//	    commands.Participate(),
//	    commands.Convert(),
//	)
//
// 2. Via direct package imports (for advanced DI/testing):
//
//	import "github.com/seatgeek/sixpack-go/pkg/commands/participation"
//
//	app.AddCommand(participation.NewParticipateCommand(participation.Config{
//	    Logger: lggr,
//	    Deps:   &participation.Deps{...},  // inject fakes for testing
//	}))
package commands

import (
	"github.com/spf13/cobra"

	"github.com/seatgeek/sixpack-go/pkg/commands/participation"
	"github.com/seatgeek/sixpack-go/pkg/logger"
)

// Commands provides a factory for creating CLI commands with shared configuration.
// This allows setting the logger once and reusing it across all commands.
type Commands struct {
	lggr logger.Logger
}

// New creates a new Commands factory with the given logger.
// The logger will be shared across all commands created by this factory.
func New(lggr logger.Logger) *Commands {
	return &Commands{lggr: lggr}
}

// Participate creates the participate command.
//
// Usage:
//
//	cmds := commands.New(lggr)
//	rootCmd.AddCommand(cmds.Participate())
func (c *Commands) Participate() *cobra.Command {
	return participation.NewParticipateCommand(participation.Config{
		Logger: c.lggr,
	})
}

// Convert creates the convert command.
//
// Usage:
//
//	cmds := commands.New(lggr)
//	rootCmd.AddCommand(cmds.Convert())
func (c *Commands) Convert() *cobra.Command {
	return participation.NewConvertCommand(participation.Config{
		Logger: c.lggr,
	})
}
