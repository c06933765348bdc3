package logger

import (
	"go.uber.org/zap"
)

// Log is the shared engine logger. Call Init before use.
var Log *zap.Logger

// Init sets up the global zap logger. Safe to call more than once.
func Init() {
	if Log != nil {
		return
	}
	var err error
	Log, err = zap.NewProduction()
	if err != nil {
		// No logger to report with, so panic is all we can do here
		panic(err)
	}
}

// InitDebug swaps in a development logger with human readable output.
func InitDebug() {
	var err error
	Log, err = zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
}
