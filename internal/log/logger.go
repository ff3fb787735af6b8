package log

import (
	"io"
	"os"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Discard is a logger that drops all messages.
var Discard = New(WithLevel(LevelSilent), WithWriter(io.Discard))

// New creates a logger writing to stderr at [LevelError], unless configured otherwise.
func New(ops ...Option) *Logger {
	defaults := []Option{
		WithWriter(os.Stderr),
		WithLevel(LevelError),
	}

	l := Logger{zerolog.New(nil).
		With().Timestamp().Logger(),
	}
	for _, op := range slices.Concat(defaults, ops) {
		op(&l)
	}
	return &l
}

func WithLevel(level Level) Option {
	return func(l *Logger) {
		l.log = l.log.Level(makeZerologLevel(level))
	}
}

func WithWriter(w io.Writer) Option {
	return func(l *Logger) {
		out := w
		if isTerminal(w) {
			out = zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
				cw.TimeFormat = time.DateTime
				cw.Out = w
			})
		}
		l.log = l.log.Output(out)
	}
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return true
	}
	return false
}

type Option func(*Logger)

type Logger struct {
	log zerolog.Logger
}

// WithFields returns a copy of the logger that attaches key-value pairs to every message.
func (l *Logger) WithFields(kv ...any) *Logger {
	return &Logger{l.log.With().Fields(kv).Logger()}
}

func (l *Logger) Fatal(msg string, err error) {
	l.logEntry(LevelFatal, msg, err, nil)
	os.Exit(1)
}

func (l *Logger) Error(msg string, err error) {
	l.logEntry(LevelError, msg, err, nil)
}

func (l *Logger) Info(msg string, kv ...any) {
	l.logEntry(LevelInfo, msg, nil, kv)
}

func (l *Logger) Verbose(msg string, kv ...any) {
	l.logEntry(LevelVerbose, msg, nil, kv)
}

func (l *Logger) logEntry(level Level, msg string, err error, kv []any) {
	entry := l.log.WithLevel(makeZerologLevel(level))
	if err != nil {
		entry = entry.Err(err)
	}

	entry.Fields(kv).
		Msg(msg)
}
