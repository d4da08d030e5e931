// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides a structured logging abstraction built on top of slog.
//
// It gives xpm-core packages and their host extensions a consistent,
// environment-aware logging setup without each host wiring slog by hand.
//
// # Basic Usage
//
//	// Initialize logging (typically in the host's main)
//	logutil.SetupLogger(debug, structured)
//
//	logutil.Debug("scanning store", "package", pkgName)
//	logutil.Info("toolchain resolved", "path", path)
//
// # Debug Mode
//
// Debug logging can be enabled two ways:
//   - Pass debug=true to SetupLogger
//   - Set XPM_DEBUG=true in the environment
//
// # Component Loggers
//
// Library packages log through a ComponentLogger so every record carries
// the originating component and, where useful, the tool being resolved:
//
//	log := logutil.NewLogger("toolchain").WithTool("arm-gcc")
//	log.Debug("selected newest version", "version", v)
//
// # Structured Logging
//
// When structured=true, logs are emitted as JSON; otherwise a
// human-readable text format is used. Output goes to stderr by default.
package logutil
