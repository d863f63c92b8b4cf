package main

import (
	"io"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// verbosity is the -v/-q flag group. It only affects log output.
type verbosity struct {
	verbose int
	quiet   int
}

func (v *verbosity) addFlags(fs *pflag.FlagSet) {
	fs.CountVarP(&v.verbose, "verbose", "v", "More output per occurrence")
	fs.CountVarP(&v.quiet, "quiet", "q", "Less output per occurrence")
}

// level returns the minimum enabled log level, starting from warn. ok is
// false when logging is silenced entirely.
func (v verbosity) level() (lvl zapcore.Level, ok bool) {
	l := int(zapcore.WarnLevel) - v.verbose + v.quiet
	if l > int(zapcore.ErrorLevel) {
		return zapcore.InvalidLevel, false
	}
	if l < int(zapcore.DebugLevel) {
		l = int(zapcore.DebugLevel)
	}
	return zapcore.Level(l), true
}

// logger builds a console logger writing to w at the selected level.
func (v verbosity) logger(w io.Writer) *zap.Logger {
	lvl, ok := v.level()
	if !ok {
		return zap.NewNop()
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(zapcore.AddSync(w)), lvl)
	return zap.New(core)
}
