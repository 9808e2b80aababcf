// Package logging provides structured logging for the underlords tool.
//
// This package wraps Go's log/slog to provide JSON-formatted logs with
// attribute propagation for debugging and post-hoc analysis. The interactive
// shell and the exploration commands route their diagnostics through it so a
// run can be reconstructed from the log file afterwards.
//
// # Features
//
//   - JSON-formatted structured logging via slog
//   - Configurable log levels (DEBUG, INFO, WARN, ERROR)
//   - Attribute propagation (command, alliance, arbitrary key-value pairs)
//   - Log rotation with configurable size limits
//
// # Thread Safety
//
// All types in this package are safe for concurrent use. The [Logger] type
// uses Go's slog internally which is designed for concurrent access. The
// [RotatingWriter] type uses a mutex to protect file operations during
// rotation. Child loggers created via With* methods share the underlying
// writer safely.
//
// # Basic Usage
//
// Create a logger writing to a directory:
//
//	logger, err := logging.NewLogger(dir, "INFO", logging.DefaultRotationConfig())
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Debug("candidate skipped", "alliance", "Savage", "error", err.Error())
//	logger.Info("data file loaded", "heroes", 60, "alliances", 25)
//
// # Attribute Propagation
//
// Create child loggers with persistent attributes:
//
//	exploreLog := logger.WithCommand("explore")
//	allianceLog := exploreLog.WithAlliance("Knight")
//
//	// All logs from allianceLog include command and alliance
//	allianceLog.Debug("variant kept", "size", 7)
//
// Output:
//
//	{"time":"...","level":"DEBUG","msg":"variant kept","command":"explore","alliance":"Knight","size":7}
//
// # Log Rotation
//
// The log file is rotated once it exceeds the configured size:
//
//	config := logging.RotationConfig{
//	    MaxSizeMB:  10, // Rotate when file exceeds 10MB
//	    MaxBackups: 3,  // Keep 3 backup files
//	}
//
// Rotated files are named underlords.log.1, underlords.log.2, etc., where .1
// is the most recent backup.
//
// # Testing
//
// For testing, use [NopLogger] to discard all log output:
//
//	func TestSomething(t *testing.T) {
//	    logger := logging.NopLogger()
//	    // Use logger in tests without creating files
//	}
//
// # Configuration
//
// The logging system is typically configured via the config file:
//
//	logging:
//	  level: info
//	  dir: ""
//	  max_size_mb: 10
//	  max_backups: 3
//
// Use [ValidLevels] to get the list of valid level strings, and [ParseLevel]
// to normalize user-provided level strings.
package logging
