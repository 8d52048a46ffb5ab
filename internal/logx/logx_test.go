package logx

import (
	"bytes"
	stdlog "log"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupRoutesStdLog(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	Setup(&buf, "warn", false)

	stdlog.Printf("listening on :4000")
	assert.Empty(t, buf.String(), "info lines are below warn")

	stdlog.Printf("web server error: boom")
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "web server error: boom")
}

func TestSetupPretty(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	Setup(&buf, "info", true)

	stdlog.Printf("listening on :4000")
	assert.Contains(t, buf.String(), "listening on :4000")
	assert.NotContains(t, buf.String(), `"level"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("whatever"))
}
