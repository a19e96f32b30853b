package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	usecasecontract "github.com/mikiasgoitom/Inkwell/internal/usecase/contract"
)

// ZeroLogger implements IAppLogger on top of zerolog.
type ZeroLogger struct {
	log zerolog.Logger
}

// NewZeroLogger creates a logger writing to out. format is json or console.
func NewZeroLogger(level, format string, out io.Writer) *ZeroLogger {
	if out == nil {
		out = os.Stderr
	}
	if format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}
	zerolog.TimeFieldFormat = time.RFC3339
	l := zerolog.New(out).Level(parseLevel(level)).With().Timestamp().Str("service", "inkwell").Logger()
	return &ZeroLogger{log: l}
}

var _ usecasecontract.IAppLogger = (*ZeroLogger)(nil)

// Zerolog exposes the underlying logger for middleware and the supervisor.
func (l *ZeroLogger) Zerolog() *zerolog.Logger {
	return &l.log
}

// With returns a child logger carrying the component field.
func (l *ZeroLogger) With(component string) *ZeroLogger {
	return &ZeroLogger{log: l.log.With().Str("component", component).Logger()}
}

func (l *ZeroLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug().Msg(fmt.Sprintf(format, args...))
}

func (l *ZeroLogger) Infof(format string, args ...interface{}) {
	l.log.Info().Msg(fmt.Sprintf(format, args...))
}

func (l *ZeroLogger) Warnf(format string, args ...interface{}) {
	l.log.Warn().Msg(fmt.Sprintf(format, args...))
}

// Warningf is an alias of Warnf.
func (l *ZeroLogger) Warningf(format string, args ...interface{}) {
	l.Warnf(format, args...)
}

func (l *ZeroLogger) Errorf(format string, args ...interface{}) {
	l.log.Error().Msg(fmt.Sprintf(format, args...))
}

// Fatalf logs and exits the process.
func (l *ZeroLogger) Fatalf(format string, args ...interface{}) {
	l.log.Fatal().Msg(fmt.Sprintf(format, args...))
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}
