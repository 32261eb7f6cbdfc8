package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

const logTimeFormat = "15:04:05.00"

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      logTimeFormat,
		Level:           level,
	})
}

// stopwatch reports how long a command step took once it finishes.
type stopwatch struct {
	logger  *log.Logger
	started time.Time
}

func newProgress(l *log.Logger) *stopwatch {
	return &stopwatch{logger: l, started: time.Now()}
}

func (s *stopwatch) elapsed() time.Duration {
	return time.Since(s.started).Round(time.Millisecond)
}

// done logs msg at info level with the elapsed time appended as a field.
func (s *stopwatch) done(msg string, keyvals ...any) {
	s.logger.Info(msg, append(keyvals, "took", s.elapsed())...)
}
