package logger

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/inconshreveable/log15"
	"github.com/mattn/go-colorable"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Conf struct {
	// Level is one of debug, info, warn, error, crit.
	Level      string
	File       string
	MaxSizeMB  int
	MaxAgeDays int
	Color      bool
	// Out replaces the terminal output, mostly for tests.
	Out io.Writer
}

type Logger struct {
	l log15.Logger
}

func New(conf Conf) (*Logger, error) {
	lvl := log15.LvlInfo

	if conf.Level != "" {
		parsed, err := log15.LvlFromString(strings.ToLower(conf.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level %q: %w", conf.Level, err)
		}

		lvl = parsed
	}

	handlers := []log15.Handler{terminalHandler(conf)}

	if conf.File != "" {
		handlers = append(handlers, log15.StreamHandler(&lumberjack.Logger{
			Filename: conf.File,
			MaxSize:  conf.MaxSizeMB,
			MaxAge:   conf.MaxAgeDays,
		}, log15.LogfmtFormat()))
	}

	l := log15.New()
	l.SetHandler(log15.LvlFilterHandler(lvl, log15.MultiHandler(handlers...)))

	return &Logger{l: l}, nil
}

func terminalHandler(conf Conf) log15.Handler {
	if conf.Out != nil {
		return log15.StreamHandler(conf.Out, log15.LogfmtFormat())
	}

	if conf.Color {
		return log15.StreamHandler(colorable.NewColorableStdout(), log15.TerminalFormat())
	}

	return log15.StreamHandler(colorable.NewNonColorable(colorable.NewColorableStdout()), log15.LogfmtFormat())
}

// Discard drops every record.
func Discard() *Logger {
	l := log15.New()
	l.SetHandler(log15.DiscardHandler())

	return &Logger{l: l}
}

func (l *Logger) LogErrorf(format string, v ...any) {
	l.l.Error(fmt.Sprintf(format, v...))
}

func (l *Logger) LogInfo(format string, v ...any) {
	l.l.Info(fmt.Sprintf(format, v...))
}

func (l *Logger) LogDebug(format string, v ...any) {
	l.l.Debug(fmt.Sprintf(format, v...))
}

// StdLogger adapts the logger for http.Server.ErrorLog.
func (l *Logger) StdLogger() *log.Logger {
	return log.New(errorWriter{l: l}, "", 0)
}

type errorWriter struct {
	l *Logger
}

func (w errorWriter) Write(p []byte) (int, error) {
	w.l.LogErrorf("%s", strings.TrimRight(string(p), "\n"))

	return len(p), nil
}
