// Package log provides the logging abstraction for vinascreen components.
//
// This package defines a Logger interface that can be implemented by any
// logging library. The default implementation wraps zerolog and tees every
// line to the durable audit log file; a no-op logger is provided for tests.
//
// # Usage
//
// Build the audit logger for a run:
//
//	logger, closeFn, err := log.NewAuditLogger("debug_log.txt")
//
// Every line reaches both the operator console and the audit file, and each
// audit write is synced to stable storage before the call returns.
package log
