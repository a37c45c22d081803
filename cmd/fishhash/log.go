// Copyright (c) 2025 The Vigil Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"

	"vigil.network/fishhash"
)

// logWriter implements an io.Writer that outputs to standard output and
// writes to a rotating log file when one has been initialized.
type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) {
	os.Stdout.Write(p)
	if logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

var (
	// backendLog is the logging backend used to create all subsystem
	// loggers.  The backend must not be used before the log rotator has
	// been initialized, or data races and/or nil pointer dereferences will
	// occur.
	backendLog = slog.NewBackend(logWriter{})

	// logRotator is one of the logging outputs.  It should be closed on
	// application shutdown.
	logRotator *rotator.Rotator

	log     = backendLog.Logger("MAIN")
	hashLog = backendLog.Logger("FISH")
)

func init() {
	fishhash.UseLogger(hashLog)
}

// validLogLevel returns whether the given string names a valid log level.
func validLogLevel(level string) bool {
	_, ok := slog.LevelFromString(level)
	return ok
}

// setLogLevel sets the logging level of all subsystem loggers.  Invalid
// levels were rejected during config parsing, so the lookup cannot fail here.
func setLogLevel(level string) {
	lvl, _ := slog.LevelFromString(level)
	log.SetLevel(lvl)
	hashLog.SetLevel(lvl)
}

// initLogRotator initializes the logging rotator to write logs to logFile and
// create roll files in the same directory.  It must be called before the
// package-global log rotator variables are used.
func initLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %w", err)
	}
	logRotator = r
	return nil
}
