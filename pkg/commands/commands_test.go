package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seatgeek/sixpack-go/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	lggr := logger.Nop()
	cmds := New(lggr)

	require.NotNil(t, cmds)
	assert.Equal(t, lggr, cmds.lggr)
}

func TestCommands_Participate(t *testing.T) {
	t.Parallel()

	cmd := New(logger.Nop()).Participate()

	require.NotNil(t, cmd)
	assert.Equal(t, "participate", cmd.Use)

	for _, name := range []string{"config", "experiment", "alternative", "force", "traffic-fraction", "client-id", "definitions"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag %s", name)
	}
}

func TestCommands_Convert(t *testing.T) {
	t.Parallel()

	cmd := New(logger.Nop()).Convert()

	require.NotNil(t, cmd)
	assert.Equal(t, "convert", cmd.Use)

	for _, name := range []string{"config", "experiment", "kpi", "client-id"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag %s", name)
	}
}

func TestCommands_MultipleCommands_ShareLogger(t *testing.T) {
	t.Parallel()

	// The logger is set once on the factory and shared by every command it creates.
	cmds := New(logger.Nop())

	require.NotNil(t, cmds.Participate())
	require.NotNil(t, cmds.Participate())
	require.NotNil(t, cmds.Convert())
}
