package cfg

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	BotToken         string // shared secret for initData and the bot API token
	BotName          string
	AppLabel         string
	LinkHost         string
	WebAddr          string
	LogLevel         string
	LogPretty        bool
	MaxInitDataBytes int64
	InitDataMaxAge   time.Duration
}

func Load() Config {
	return load(".env")
}

func load(envFile string) Config {
	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	_ = v.ReadInConfig()
	v.AutomaticEnv()

	v.SetDefault("BOT_NAME", "MyPulseBot")
	v.SetDefault("APP_LABEL", "Pulse")
	v.SetDefault("LINK_HOST", "max.ru")
	v.SetDefault("WEB_ADDR", ":4000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)
	v.SetDefault("MAX_INIT_DATA_BYTES", 8192)
	v.SetDefault("INIT_DATA_MAX_AGE", "24h")

	c := Config{
		BotToken:         v.GetString("BOT_TOKEN"),
		BotName:          v.GetString("BOT_NAME"),
		AppLabel:         v.GetString("APP_LABEL"),
		LinkHost:         v.GetString("LINK_HOST"),
		WebAddr:          v.GetString("WEB_ADDR"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		LogPretty:        v.GetBool("LOG_PRETTY"),
		MaxInitDataBytes: v.GetInt64("MAX_INIT_DATA_BYTES"),
		InitDataMaxAge:   v.GetDuration("INIT_DATA_MAX_AGE"),
	}
	if c.MaxInitDataBytes <= 0 {
		c.MaxInitDataBytes = 8192
	}
	if c.InitDataMaxAge <= 0 {
		c.InitDataMaxAge = 24 * time.Hour
	}
	return c
}
