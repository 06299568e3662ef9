// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the docchat TUI.
package util

import (
	"log"
	"os"
	"path/filepath"
	"sync"
)

// =============================================================================
// FILE LOGGING
// =============================================================================

// The TUI owns the terminal, so diagnostics go to a log file instead of
// stdout/stderr. The logger is created lazily on first use and appends to
// ~/.docchat/docchat.log.

var (
	logOnce   sync.Once
	logTarget *log.Logger
)

// Logf writes a formatted line to the application log file.
// Logging failures are silently ignored; there is nowhere safe to report them.
func Logf(format string, args ...interface{}) {
	logOnce.Do(initLogger)
	if logTarget != nil {
		logTarget.Printf(format, args...)
	}
}

func initLogger() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".docchat")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "docchat.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return
	}
	logTarget = log.New(f, "", log.LstdFlags)
}
