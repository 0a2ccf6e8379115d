package logger

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLogrus(t *testing.T) {
	t.Cleanup(func() {
		logrus.SetOutput(io.Discard)
		logrus.SetLevel(logrus.InfoLevel)
		Log.Apply(Properties{Level: "Info"}, io.Discard)
	})
}

func TestParseLevel(t *testing.T) {
	cases := map[string]logrus.Level{
		"Trace":   logrus.TraceLevel,
		"Debug":   logrus.DebugLevel,
		"Info":    logrus.InfoLevel,
		" Warn ":  logrus.WarnLevel,
		"Error":   logrus.ErrorLevel,
		"Fatal":   logrus.FatalLevel,
		"":        logrus.DebugLevel,
		"verbose": logrus.DebugLevel,
	}
	for name, want := range cases {
		assert.Equal(t, want, ParseLevel(name), "level %q", name)
	}
}

func TestInitReadsProperties(t *testing.T) {
	resetLogrus(t)

	logFile := filepath.Join(t.TempDir(), "match.log")
	fs := afero.NewMemMapFs()
	content := "logFilename=" + logFile + "\n" +
		"maxSize=5\n" +
		"maxBackups=1\n" +
		"maxAge=7\n" +
		"compress=true\n" +
		"level=Warn\n"
	require.NoError(t, afero.WriteFile(fs, "/conf/logger.properties", []byte(content), 0o644))

	props, err := Log.Init(fs, "/conf")
	require.NoError(t, err)

	assert.Equal(t, logFile, props.LogFilename)
	assert.Equal(t, 5, props.MaxSize)
	assert.Equal(t, 1, props.MaxBackups)
	assert.Equal(t, 7, props.MaxAge)
	assert.True(t, props.Compress)
	assert.False(t, props.Console, "console echo should be off unless asked for")
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
}

func TestInitDefaultsWhenMissing(t *testing.T) {
	resetLogrus(t)

	props, err := Log.Init(afero.NewMemMapFs(), "/nowhere")
	require.NoError(t, err, "a missing logger.properties should not be an error")

	assert.Equal(t, "pong.log", props.LogFilename)
	assert.Equal(t, 10, props.MaxSize)
	assert.Equal(t, "Info", props.Level)
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestApplyWritesJSON(t *testing.T) {
	resetLogrus(t)

	var buf bytes.Buffer
	Log.Apply(Properties{Level: "Debug"}, &buf)

	Log.Debug("serve")
	Log.Trace("hidden")

	out := buf.String()
	assert.Contains(t, out, `"msg":"serve"`)
	assert.Contains(t, out, `"level":"debug"`)
	assert.NotContains(t, out, "hidden", "trace lines should be filtered at debug level")
}
