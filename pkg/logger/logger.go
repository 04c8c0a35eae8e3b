package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger.
type Config struct {
	Env     string    // development → consola; cualquier otro → JSON
	Level   string    // trace | debug | info | warn | error (inválido → info)
	Service string    // campo "service" fijo en cada evento; vacío = sin campo
	Output  io.Writer // nil = stdout
}

// Logger envuelve zerolog para inyectarlo en handlers, casos de uso y el seeder.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger y lo instala como logger global de zerolog.
// En debug/trace añade el archivo:línea de quien registra.
func New(cfg Config) *Logger {
	level := ParseLevel(cfg.Level)

	ctx := zerolog.New(writerFor(cfg)).Level(level).With().Timestamp()
	if cfg.Service != "" {
		ctx = ctx.Str("service", cfg.Service)
	}
	if level <= zerolog.DebugLevel {
		ctx = ctx.Caller()
	}
	zl := ctx.Logger()

	log.Logger = zl
	return &Logger{zl: zl}
}

func writerFor(cfg Config) io.Writer {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	if cfg.Env != "development" {
		return out
	}
	return zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}
}

// ParseLevel traduce el nivel de configuración; vacío o desconocido → info.
func ParseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Nop descarta todo. Para tests.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// Named sublogger con component fijo (http, seed, ...).
func (l *Logger) Named(component string) *Logger {
	return &Logger{zl: l.zl.With().Str("component", component).Logger()}
}

func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// WithLevel evento con el nivel indicado (el logger de peticiones lo elige según el status).
func (l *Logger) WithLevel(level zerolog.Level) *zerolog.Event { return l.zl.WithLevel(level) }
