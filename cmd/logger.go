package cmd

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/apex/log"
	"github.com/heroku/color"
)

var (
	// DefaultLogger is the console logger of the service process.
	DefaultLogger = &Logger{
		&log.Logger{
			Handler: &handler{
				writer: os.Stdout,
			},
		},
	}
	warnStyle  = color.New(color.FgYellow, color.Bold).SprintfFunc()
	errorStyle = color.New(color.FgRed, color.Bold).SprintfFunc()
)

type Logger struct {
	*log.Logger
}

func DisableColor(noColor bool) {
	color.Disable(noColor)
}

// SetLevel sets the log level of l to the requested level name.
func (l *Logger) SetLevel(requested string) error {
	level, err := log.ParseLevel(requested)
	if err != nil {
		return FailErrCode(fmt.Errorf("parse log level (%s)", requested), CodeInvalidArgs, "parse arguments")
	}
	l.Logger.Level = level
	return nil
}

type handler struct {
	mu     sync.Mutex
	writer io.Writer
}

func (h *handler) HandleLog(entry *log.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var err error
	switch entry.Level {
	case log.WarnLevel:
		_, err = fmt.Fprintf(h.writer, "%s %s\n", warnStyle("Warning:"), entry.Message)
	case log.ErrorLevel:
		_, err = fmt.Fprintf(h.writer, "%s %s\n", errorStyle("ERROR:"), entry.Message)
	default:
		_, err = fmt.Fprintln(h.writer, entry.Message)
	}
	return err
}
