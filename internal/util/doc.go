// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the docchat TUI.
//
// This package contains common helper functions used throughout the
// application for string manipulation, type conversion, and logging.
//
// # Key Functions
//
// String Utilities:
//   - TruncateRunes: UTF-8 safe string truncation with ellipsis
//   - TruncateWidth: display-width aware truncation (CJK safe)
//   - PadRight: display-width aware padding
//
// Type Conversion:
//   - IntToString, FloatToStringPrec: numeric to string conversion
//
// Logging:
//   - Logf: appends to the application log file (the terminal is owned
//     by the TUI, so nothing may be written to stdout/stderr)
package util
