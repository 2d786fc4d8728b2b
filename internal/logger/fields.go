package logger

import (
	"strings"

	"go.uber.org/zap"
)

// Field keys shared by every component that talks to a remote service.
const (
	FieldProvider = "ai_provider"
	FieldModel    = "ai_model"
	FieldEndpoint = "analyzer_endpoint"
)

// WithModel tags log entries of a model-backed component with its provider and
// model. Blank values are left out.
func WithModel(log *zap.Logger, provider, model string) *zap.Logger {
	return with(log, FieldProvider, provider, FieldModel, model)
}

// WithAnalyzer tags log entries of the analyzer client with its endpoint.
func WithAnalyzer(log *zap.Logger, endpoint string) *zap.Logger {
	return with(log, FieldEndpoint, endpoint)
}

// with expects key/value pairs. A nil logger becomes a no-op one.
func with(log *zap.Logger, pairs ...string) *zap.Logger {
	if log == nil {
		log = zap.NewNop()
	}

	var fields []zap.Field
	for i := 0; i+1 < len(pairs); i += 2 {
		if value := strings.TrimSpace(pairs[i+1]); value != "" {
			fields = append(fields, zap.String(pairs[i], value))
		}
	}
	if len(fields) == 0 {
		return log
	}

	return log.With(fields...)
}
