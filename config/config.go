package config

import (
	_ "embed"
	"os"
	"strconv"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug LogLevel = "debug"
	Info  LogLevel = "info"
	Warn  LogLevel = "warn"
	Error LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("EDUPLUS_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("EDUPLUS_DEBUG") == "true"
}

// GetPort returns the HTTP listen port, 5000 by default.
func GetPort() int {
	port := os.Getenv("PORT")
	if port == "" {
		return 5000
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return 5000
	}
	return n
}

func GetListen() string {
	return os.Getenv("EDUPLUS_LISTEN")
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("EDUPLUS_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "/var/log"
	}
	return logFolderPath
}

func GetSessionSecret() string {
	return os.Getenv("EDUPLUS_SESSION_SECRET")
}

// GetSessionMaxAge returns the session lifetime in minutes, 0 meaning the
// store default.
func GetSessionMaxAge() int {
	maxAge := os.Getenv("EDUPLUS_SESSION_MAX_AGE")
	if maxAge == "" {
		return 0
	}
	n, err := strconv.Atoi(maxAge)
	if err != nil {
		return 0
	}
	return n
}

// GetRedisAddr returns the external Redis address for the session store.
// Empty means an embedded instance is started instead.
func GetRedisAddr() string {
	return os.Getenv("REDIS_ADDR")
}

// GetCORSOrigin returns the allowed browser origin, defaulting to the Vite
// dev server the frontend pages are developed against.
func GetCORSOrigin() string {
	origin := os.Getenv("EDUPLUS_CORS_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return origin
}
