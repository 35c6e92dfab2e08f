package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { _ = SetLevel("info") })

	require.NoError(t, SetLevel("warn"))
	assert.Equal(t, zapcore.WarnLevel, Level())

	require.NoError(t, SetLevel("debug"))
	assert.Equal(t, zapcore.DebugLevel, Level())
}

func TestSetLevelRejectsUnknown(t *testing.T) {
	t.Cleanup(func() { _ = SetLevel("info") })

	require.NoError(t, SetLevel("error"))
	err := SetLevel("loud")
	assert.Error(t, err)
	assert.Equal(t, zapcore.ErrorLevel, Level(), "level must stay unchanged on error")
}

func TestLogUsableBeforeInit(t *testing.T) {
	assert.NotPanics(t, func() { Log.Info("before init") })
}
