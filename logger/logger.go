// Package logger provides leveled logging for the eduplus backend with
// dual backends: console (stderr) and a log file.
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ashishaher15/eduplus-challange/config"
	"github.com/op/go-logging"
)

const logFileName = "eduplus.log"

var (
	logger  *logging.Logger
	logFile *os.File
)

// InitLogger initializes the logging backends. Console logging uses the
// given level, file logging always records at DEBUG.
func InitLogger(level logging.Level) {
	newLogger := logging.MustGetLogger(config.GetName())
	backends := make([]logging.Backend, 0, 2)

	consoleBackend := logging.NewLogBackend(os.Stderr, "", 0)
	consoleLeveled := logging.AddModuleLevel(logging.NewBackendFormatter(consoleBackend, newFormatter()))
	consoleLeveled.SetLevel(level, config.GetName())
	backends = append(backends, consoleLeveled)

	if fileBackend := initFileBackend(); fileBackend != nil {
		fileLeveled := logging.AddModuleLevel(fileBackend)
		fileLeveled.SetLevel(logging.DEBUG, config.GetName())
		backends = append(backends, fileLeveled)
	}

	newLogger.SetBackend(logging.MultiLogger(backends...))
	logger = newLogger
}

func newFormatter() logging.Formatter {
	return logging.MustStringFormatter("%{time:2006/01/02 15:04:05} %{level} - %{message}")
}

func initFileBackend() logging.Backend {
	logDir := config.GetLogFolder()
	if err := os.MkdirAll(logDir, 0o750); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log folder %s: %v\n", logDir, err)
		return nil
	}
	file, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		return nil
	}
	logFile = file
	return logging.NewBackendFormatter(logging.NewLogBackend(file, "", 0), newFormatter())
}

// CloseLogFile closes the log file if open.
func CloseLogFile() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

func Debug(args ...any) {
	if logger != nil {
		logger.Debug(args...)
	}
}

func Debugf(format string, args ...any) {
	if logger != nil {
		logger.Debugf(format, args...)
	}
}

func Info(args ...any) {
	if logger != nil {
		logger.Info(args...)
	}
}

func Infof(format string, args ...any) {
	if logger != nil {
		logger.Infof(format, args...)
	}
}

func Warning(args ...any) {
	if logger != nil {
		logger.Warning(args...)
	}
}

func Warningf(format string, args ...any) {
	if logger != nil {
		logger.Warningf(format, args...)
	}
}

func Error(args ...any) {
	if logger != nil {
		logger.Error(args...)
	}
}

func Errorf(format string, args ...any) {
	if logger != nil {
		logger.Errorf(format, args...)
	}
}
