// Package logging builds the slog loggers used by nitractl and, on request,
// by the library packages.
//
// # Usage
//
// Create a logger with the desired configuration:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelDebug,
//	    Format: logging.FormatText,
//	})
//
//	logger.Info("restart requested", "service_id", id)
//	logger.Error("upload failed", "path", remote, "error", err)
//
// # Integration
//
// Library types (the API client, the transfer bridge, the config checker)
// accept a *slog.Logger through an option and default to Nop, so diagnostics
// stay opt-in for embedders. The CLI switches to a debug-level text logger
// on stderr when --verbose is set.
package logging
