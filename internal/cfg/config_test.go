package cfg

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	c := load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Empty(t, c.BotToken)
	assert.Equal(t, "MyPulseBot", c.BotName)
	assert.Equal(t, "Pulse", c.AppLabel)
	assert.Equal(t, "max.ru", c.LinkHost)
	assert.Equal(t, ":4000", c.WebAddr)
	assert.Equal(t, "info", c.LogLevel)
	assert.EqualValues(t, 8192, c.MaxInitDataBytes)
	assert.Equal(t, 24*time.Hour, c.InitDataMaxAge)
}

func TestLoadEnvFileAndOverrides(t *testing.T) {
	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("BOT_TOKEN=file-token\nBOT_NAME=FileBot\nINIT_DATA_MAX_AGE=1h\n"), 0o644))
	t.Setenv("BOT_NAME", "EnvBot")
	t.Setenv("MAX_INIT_DATA_BYTES", "-5")

	c := load(p)
	assert.Equal(t, "file-token", c.BotToken)
	assert.Equal(t, "EnvBot", c.BotName)
	assert.Equal(t, time.Hour, c.InitDataMaxAge)
	assert.EqualValues(t, 8192, c.MaxInitDataBytes)
}
