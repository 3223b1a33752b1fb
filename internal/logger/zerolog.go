package logger

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

type ZerologAdapter struct {
	logger zerolog.Logger
}

// Options selects the output format and destination of a ZerologAdapter
type Options struct {
	Level   LogLevel
	JSON    bool
	Writer  io.Writer
	Session string
}

// New builds the adapter; every line carries a session id so one run can be
// told apart from the next in a shared log file
func New(opts Options) *ZerologAdapter {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stdout
	}
	if !opts.JSON {
		writer = zerolog.ConsoleWriter{Out: writer, TimeFormat: "15:04:05", NoColor: !isTerminal(writer)}
	}

	session := opts.Session
	if session == "" {
		session = uuid.NewString()
	}

	logger := zerolog.New(writer).
		Level(opts.Level.zerologLevel()).
		With().
		Timestamp().
		Str("session", session).
		Logger()

	return &ZerologAdapter{logger: logger}
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	event := z.logger.Info().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

func (z *ZerologAdapter) Error(component string, err error, fields map[string]interface{}) {
	event := z.logger.Error().Str("component", component).Err(err)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg("operation failed")
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	event := z.logger.Warn().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	event := z.logger.Debug().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
