package search

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the narration logger used when Options.Logger is nil.
// verbose=false yields a no-op logger; verbose=true a human-readable console
// logger on stderr at debug level.
func NewLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("search: build logger: %w", err)
	}
	return logger, nil
}

// resolveLogger picks the narration sink for o.
func resolveLogger[S any](o Options[S]) (*zap.Logger, error) {
	if o.Logger != nil {
		return o.Logger, nil
	}
	return NewLogger(o.Verbose)
}

// limitField renders a 0 ⇒ unbounded limit the way the narration shows it.
func limitField(key string, v int) zap.Field {
	if v == 0 {
		return zap.String(key, "inf")
	}
	return zap.Int(key, v)
}
