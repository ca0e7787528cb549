package internal

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LevelSet map[zapcore.Level]bool

func NewLevelSet(levels ...zapcore.Level) LevelSet {
	ls := make(LevelSet, len(levels))
	for _, lvl := range levels {
		ls[lvl] = true
	}
	return ls
}

func (ls LevelSet) Enabled(l zapcore.Level) bool {
	return ls[l]
}

var logLevels LevelSet

func InfoLevels() []zapcore.Level {
	return []zapcore.Level{zapcore.InfoLevel}
}

func DebugLevels() []zapcore.Level {
	return []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel}
}

func AllowedLogLevels() LevelSet {
	return logLevels
}

// ConfigureLogging installs the global logger. Info (and Debug when enabled)
// lines go to info; Warn and above always go to stderr. Commands that print
// lookup results on stdout pass os.Stderr here.
func ConfigureLogging(debug bool, info io.Writer) {
	levels := InfoLevels()
	if debug {
		levels = DebugLevels()
	}
	logLevels = NewLevelSet(levels...)

	zap.ReplaceGlobals(NewLogger(logLevels, zapcore.AddSync(info), zapcore.AddSync(os.Stderr)))
}

// NewLogger tees the levels in ls into info and everything from Warn up into alerts.
func NewLogger(ls LevelSet, info, alerts zapcore.WriteSyncer) *zap.Logger {
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:     "ts",
		LevelKey:    "level",
		MessageKey:  "msg",
		EncodeLevel: zapcore.CapitalLevelEncoder,
		EncodeTime:  zapcore.ISO8601TimeEncoder,
	})

	return zap.New(zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(info), ls),
		zapcore.NewCore(encoder, zapcore.Lock(alerts), zapcore.WarnLevel),
	))
}
