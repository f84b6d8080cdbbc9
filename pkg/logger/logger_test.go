package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func Test_TestObserved(t *testing.T) {
	t.Parallel()

	lggr, logs := TestObserved(t, zapcore.InfoLevel)

	lggr.Debugw("dropped", "experiment", "button-color")
	lggr.Infow("participated", "experiment", "button-color", "alternative", "red")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "participated", entry.Message)
	assert.Equal(t, "red", entry.ContextMap()["alternative"])
}

func Test_Logger_NamedAndWith(t *testing.T) {
	t.Parallel()

	lggr, logs := TestObserved(t, zapcore.DebugLevel)

	child := lggr.Named("sixpack").With("client_id", "abc")
	assert.Equal(t, "sixpack", child.Name())

	child.Warnw("slow response")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "sixpack", entry.LoggerName)
	assert.Equal(t, "abc", entry.ContextMap()["client_id"])
}

func Test_Config_New(t *testing.T) {
	t.Parallel()

	cfg := Config{Level: zapcore.WarnLevel}
	lggr, err := cfg.New()
	require.NoError(t, err)
	require.NotNil(t, lggr)

	l, ok := lggr.(*logger)
	require.True(t, ok)
	assert.False(t, l.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Desugar().Core().Enabled(zapcore.WarnLevel))
}

func Test_NewWith(t *testing.T) {
	t.Parallel()

	lggr, err := NewWith(func(cfg *zap.Config) {
		cfg.Encoding = "console"
		cfg.Level.SetLevel(zapcore.DebugLevel)
	})
	require.NoError(t, err)

	l, ok := lggr.(*logger)
	require.True(t, ok)
	assert.True(t, l.Desugar().Core().Enabled(zapcore.DebugLevel))
}

func Test_Nop(t *testing.T) {
	t.Parallel()

	lggr := Nop()
	lggr.Errorw("ignored", "error", "boom")
	assert.Empty(t, lggr.Name())
}
