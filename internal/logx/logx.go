package logx

import (
	"io"
	stdlog "log"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// stdWriter forwards std log lines into zerolog, guessing the level from the text.
type stdWriter struct {
	logger zerolog.Logger
}

func (w stdWriter) Write(p []byte) (int, error) {
	msg := strings.TrimRight(string(p), "\n")
	w.logger.WithLevel(levelFromMessage(msg)).Msg(msg)
	return len(p), nil
}

// Setup configures the global zerolog logger to write to out and redirects
// the std log package into it.
func Setup(out io.Writer, level string, pretty bool) {
	zerolog.SetGlobalLevel(parseLevel(level))
	zerolog.TimeFieldFormat = time.RFC3339Nano
	if pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05.000"}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()

	stdlog.SetFlags(0)
	stdlog.SetOutput(stdWriter{logger: log.Logger})
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func levelFromMessage(msg string) zerolog.Level {
	msg = strings.ToLower(msg)
	switch {
	case strings.Contains(msg, "error"):
		return zerolog.ErrorLevel
	case strings.Contains(msg, "warn"):
		return zerolog.WarnLevel
	case strings.Contains(msg, "debug"):
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}
