package events

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Log produces the human-readable log-line stream shown to the user, e.g.
//
//	[14:03:27] connected to 192.168.1.5:5150
//
// Every line is mirrored to slog so daemon logs and the UI agree.
type Log struct {
	lines  *Stream[string]
	logger *slog.Logger
	now    func() time.Time
}

// NewLog returns a Log writing to logger (slog.Default when nil).
func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{
		lines:  NewStream[string]("log"),
		logger: logger,
		now:    time.Now,
	}
}

// Subscribe registers an observer of log lines.
func (l *Log) Subscribe() *Subscription[string] { return l.lines.Subscribe() }

func (l *Log) Infof(format string, args ...any)  { l.emit(slog.LevelInfo, format, args...) }
func (l *Log) Warnf(format string, args ...any)  { l.emit(slog.LevelWarn, format, args...) }
func (l *Log) Errorf(format string, args ...any) { l.emit(slog.LevelError, format, args...) }

// Debugf goes to slog only.
func (l *Log) Debugf(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *Log) emit(level slog.Level, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	l.lines.Publish(fmt.Sprintf("[%s] %s", l.now().Format("15:04:05"), msg))
	l.logger.Log(context.Background(), level, msg)
}
