package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithValidConfig(t *testing.T) {
	log, err := New(Config{Level: "debug", Format: "json", Output: "stdout"})
	require.NoError(t, err)
	assert.NotNil(t, log)
	assert.True(t, log.Core().Enabled(0)) // info enabled at debug level
}

func TestNewConsoleFormat(t *testing.T) {
	log, err := New(Config{Level: "info", Format: "console", Output: "stderr"})
	require.NoError(t, err)
	assert.NotNil(t, log)
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(Config{Level: "verbose", Format: "json", Output: "stdout"})
	assert.Error(t, err)
}
