package logging

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap/zapcore"
)

// DefaultTimeFormatStr is the default time format string for log appenders.
const DefaultTimeFormatStr = "2006-01-02T15:04:05.000Z0700"

// Appender is an output for log entries. This is a subset of the `zapcore.Core` interface.
type Appender interface {
	// Write submits a structured log entry to the appender for logging.
	Write(zapcore.Entry, []zapcore.Field) error
	// Sync is for signaling that any buffered logs to `Write` should be flushed. E.g: at shutdown.
	Sync() error
}

// ConsoleAppender writes one human readable line per entry to the wrapped writer.
type ConsoleAppender struct {
	io.Writer
}

// NewWriterAppender creates a new appender that writes to the input writer.
func NewWriterAppender(writer io.Writer) ConsoleAppender {
	return ConsoleAppender{writer}
}

// Write outputs the entry as tab delimited columns: time, level, logger name (when set), caller,
// message and a json object of any structured fields.
func (appender ConsoleAppender) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	line, err := formatEntry(entry, fields)
	fmt.Fprintln(appender.Writer, line)
	return err
}

// Sync is a no-op.
func (appender ConsoleAppender) Sync() error {
	return nil
}

// formatEntry renders an entry as a single tab delimited line. Fields are json encoded in order;
// if encoding fails the line is returned without them alongside the error.
func formatEntry(entry zapcore.Entry, fields []zapcore.Field) (string, error) {
	columns := []string{
		entry.Time.Format(DefaultTimeFormatStr),
		strings.ToUpper(entry.Level.String()),
	}
	if entry.LoggerName != "" {
		columns = append(columns, entry.LoggerName)
	}
	if entry.Caller.Defined {
		columns = append(columns, callerToString(&entry.Caller))
	}
	columns = append(columns, entry.Message)
	if len(fields) == 0 {
		return strings.Join(columns, "\t"), nil
	}

	// An empty Entry makes the encoder emit only the fields.
	encoder := zapcore.NewJSONEncoder(zapcore.EncoderConfig{SkipLineEnding: true})
	buf, err := encoder.EncodeEntry(zapcore.Entry{}, fields)
	if err != nil {
		return strings.Join(columns, "\t"), err
	}
	defer buf.Free()
	return strings.Join(append(columns, buf.String()), "\t"), nil
}

// callerToString returns "dir/file.go:line" for the caller.
func callerToString(caller *zapcore.EntryCaller) string {
	// runtime.Caller paths always use '/', even on Windows.
	idx := strings.LastIndexByte(caller.File, '/')
	if idx == -1 {
		return fmt.Sprintf("%s:%d", caller.File, caller.Line)
	}
	idx = strings.LastIndexByte(caller.File[:idx], '/')
	if idx == -1 {
		return fmt.Sprintf("%s:%d", caller.File, caller.Line)
	}
	return fmt.Sprintf("%s:%d", caller.File[idx+1:], caller.Line)
}
