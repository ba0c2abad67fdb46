package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"moul.io/zapfilter"
)

// NewLogger builds a logger writing to w.
func NewLogger(params Parameters, w io.Writer) *zap.Logger {
	var enc zapcore.Encoder
	switch params.Type {
	case LoggerText:
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	case LoggerJSON:
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		panic(fmt.Sprintf("unsupported logger type %d", params.Type))
	}
	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), zap.NewAtomicLevelAt(params.Level))
	if params.Filter != nil {
		core = zapfilter.NewFilteringCore(core, params.Filter)
	}
	return zap.New(core)
}

// Setup builds a logger writing to stdout and installs it as the global zap logger.
func Setup(params Parameters) (*zap.Logger, *zap.SugaredLogger) {
	logger := NewLogger(params, os.Stdout)
	zap.ReplaceGlobals(logger)
	return logger, logger.Sugar()
}
