package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avstrong/diamond/internal/logger"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer

	l, err := logger.New(logger.Conf{Level: "info", Out: &buf})
	require.NoError(t, err)

	l.LogDebug("hidden %d", 1)
	l.LogInfo("quote for %d nights", 7)
	l.LogErrorf("could not %s", "render")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "quote for 7 nights")
	assert.Contains(t, out, "lvl=info")
	assert.Contains(t, out, "could not render")
	assert.Contains(t, out, "lvl=eror")
}

func TestDebugLevel(t *testing.T) {
	var buf bytes.Buffer

	l, err := logger.New(logger.Conf{Level: "DEBUG", Out: &buf})
	require.NoError(t, err)

	l.LogDebug("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestUnknownLevel(t *testing.T) {
	_, err := logger.New(logger.Conf{Level: "loud"})
	assert.Error(t, err)
}

func TestStdLogger(t *testing.T) {
	var buf bytes.Buffer

	l, err := logger.New(logger.Conf{Out: &buf})
	require.NoError(t, err)

	l.StdLogger().Print("http: TLS handshake error")
	assert.Contains(t, buf.String(), "TLS handshake error")
	assert.Contains(t, buf.String(), "lvl=eror")
}
