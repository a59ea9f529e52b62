package main

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger returns the console logger used by all commands. Logs go to w
// (stderr in practice) so that stdout carries only command output.
func newLogger(w io.Writer, verbose, quiet, color bool) *zap.Logger {
	if quiet {
		return zap.NewNop()
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	if color {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(zapcore.AddSync(w)), level)
	return zap.New(core)
}

// commandLogger builds the logger from the loaded configuration
func commandLogger(w io.Writer) *zap.Logger {
	return newLogger(w,
		getBool("verbose", false),
		getBool("quiet", false),
		getBool("color", false))
}
