package log

import (
	"bytes"
	"testing"

	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerWithWriterFiltersLevel(t *testing.T) {
	lvl, err := ParseLevel("info")
	require.NoError(t, err)

	prev := Logger
	t.Cleanup(func() { Logger = prev })

	var buf bytes.Buffer
	logger := InitLoggerWithWriter(&buf, "logfmt", lvl)

	level.Debug(logger).Log("msg", "hidden")
	level.Info(Logger).Log("msg", "shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "level=info")
}

func TestParseLevelInvalid(t *testing.T) {
	_, err := ParseLevel("loud")
	require.Error(t, err)
}
