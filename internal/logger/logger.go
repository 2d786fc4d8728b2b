package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the resumefit logger. Entries go to stderr; stdout carries the
// rendered card or the normalized JSON.
func New(json bool, debug bool) (*zap.Logger, error) {
	out, _, err := zap.Open("stderr")
	if err != nil {
		return nil, err
	}

	return build(out, json, debug), nil
}

func build(out zapcore.WriteSyncer, json bool, debug bool) *zap.Logger {
	encCfg := zapcore.EncoderConfig{
		MessageKey:   "step",
		LevelKey:     "level",
		TimeKey:      "time",
		CallerKey:    "caller",
		EncodeLevel:  zapcore.LowercaseLevelEncoder,
		EncodeTime:   zapcore.RFC3339TimeEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	}

	encoder := zapcore.NewConsoleEncoder(encCfg)
	if json {
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	return zap.New(zapcore.NewCore(encoder, out, level), zap.AddCaller())
}
