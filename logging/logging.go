// Package logging holds the process-wide zap logger. Packages log through
// the helpers here or through a Named child.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is replaced by Initialize and SetLogger; never nil.
var Logger *zap.Logger

// Config is the logging block of webquote.hcl.
type Config struct {
	// debug, info, warn or error; anything else means info.
	Level string `json:"level" hcl:"level,optional"`
	// console or json.
	Format string `json:"format" hcl:"format,optional"`
	// stdout, stderr or a file path to append to.
	Output      string `json:"output" hcl:"output,optional"`
	Development bool   `json:"development" hcl:"development,optional"`
}

func DefaultConfig() Config {
	return Config{Level: "info", Format: "console", Output: "stderr"}
}

// Initialize builds the global logger from cfg. Only an unusable output
// is an error; the previous logger stays in place then.
func Initialize(cfg Config) error {
	sink, err := openSink(cfg.Output)
	if err != nil {
		return err
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	opts := []zap.Option{zap.AddCaller()}
	if cfg.Development {
		opts = append(opts, zap.Development(), zap.AddStacktrace(zapcore.ErrorLevel))
	}
	Logger = zap.New(zapcore.NewCore(newEncoder(cfg.Format), sink, level), opts...)
	return nil
}

func newEncoder(format string) zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "timestamp"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	if format == "console" {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return zapcore.NewConsoleEncoder(ec)
	}
	return zapcore.NewJSONEncoder(ec)
}

func openSink(output string) (zapcore.WriteSyncer, error) {
	switch output {
	case "", "stderr":
		return zapcore.Lock(os.Stderr), nil
	case "stdout":
		return zapcore.Lock(os.Stdout), nil
	}
	f, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return zapcore.AddSync(f), nil
}

// SetLogger swaps the global logger, typically for an observer or zaptest
// logger in tests.
func SetLogger(l *zap.Logger) {
	Logger = l
}

func Sync() {
	_ = Logger.Sync()
}

// Named returns a child logger for one component, e.g. "sheet" or "mailer".
func Named(component string) *zap.Logger {
	return Logger.Named(component)
}

// Quote is the field every quotation-related log line carries.
func Quote(number string) zap.Field {
	return zap.String("quote", number)
}

func Debug(msg string, fields ...zap.Field) { Logger.Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { Logger.Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { Logger.Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { Logger.Error(msg, fields...) }

func init() {
	Logger = zap.NewNop()
	_ = Initialize(DefaultConfig())
}
