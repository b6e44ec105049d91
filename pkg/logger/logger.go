// Package logger builds the zap logger shared by the binaries.
//
// Development uses a colored console encoder at debug level by default;
// production uses JSON at info level. When a log file is configured the
// output is teed into a lumberjack-rotated file.
package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"pokedex/pkg/utils"
)

// New returns a logger configured from cfg. Unknown levels fall back to
// the environment's default level.
func New(cfg utils.LogConfig) *zap.Logger {
	production := strings.EqualFold(cfg.Env, "production")

	var enc zapcore.Encoder
	if production {
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.TimeKey = "timestamp"
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encCfg.EncodeCaller = zapcore.ShortCallerEncoder
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.999")
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encCfg.EncodeCaller = zapcore.ShortCallerEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	level := parseLevel(cfg.Level, production)

	cores := []zapcore.Core{
		zapcore.NewCore(enc, zapcore.Lock(os.Stdout), level),
	}
	if cfg.File != "" {
		rotated := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    50, // MB
			MaxBackups: 3,
			MaxAge:     14, // days
			Compress:   true,
		}
		fileEnc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		cores = append(cores, zapcore.NewCore(fileEnc, zapcore.AddSync(rotated), level))
	}

	opts := []zap.Option{zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)}
	if !production {
		opts = append(opts, zap.Development())
	}
	return zap.New(zapcore.NewTee(cores...), opts...)
}

func parseLevel(s string, production bool) zapcore.Level {
	def := zapcore.DebugLevel
	if production {
		def = zapcore.InfoLevel
	}
	if strings.TrimSpace(s) == "" {
		return def
	}
	lvl, err := zapcore.ParseLevel(s)
	if err != nil {
		return def
	}
	return lvl
}
