package logging

import (
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls logger construction.
type Options struct {
	Service string
	Level   zapcore.Level
	Console bool
}

// FromEnv reads LOG_LEVEL (default info) and LOG_FORMAT (console or json).
func FromEnv(service string) Options {
	return Options{
		Service: service,
		Level:   parseLevel(os.Getenv("LOG_LEVEL")),
		Console: encoding(os.Getenv("LOG_FORMAT")) == "console",
	}
}

// NewLogger builds the logger for service from the environment.
func NewLogger(service string) (*zap.Logger, error) {
	return New(FromEnv(service))
}

// New builds a JSON logger on stdout, sampled per second, or an unsampled
// console logger when opts.Console is set.
func New(opts Options) (*zap.Logger, error) {
	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(opts.Level),
		Encoding:         "json",
		EncoderConfig:    encoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		Sampling:         &zap.SamplingConfig{Initial: 100, Thereafter: 100},
	}
	if opts.Console {
		cfg.Encoding = "console"
		cfg.Sampling = nil
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	if opts.Service != "" {
		cfg.InitialFields = map[string]interface{}{"service": opts.Service}
	}
	return cfg.Build()
}

func parseLevel(raw string) zapcore.Level {
	level, err := zapcore.ParseLevel(strings.TrimSpace(raw))
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

func encoding(raw string) string {
	if strings.EqualFold(strings.TrimSpace(raw), "console") {
		return "console"
	}
	return "json"
}

func utcTime(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	zapcore.RFC3339NanoTimeEncoder(t.UTC(), enc)
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.StacktraceKey = "stack"
	cfg.EncodeTime = utcTime
	cfg.EncodeDuration = zapcore.StringDurationEncoder
	return cfg
}
