// Package observability provides interfaces for logging and metrics collection
// in the go-unifi-access library.
//
// This package defines standard interfaces that allow users to integrate their
// own logging and metrics implementations with the Access API client.
//
// # Logger Interface
//
// The Logger interface supports structured logging with key-value pairs:
//
//	logger := myCustomLogger{} // implements observability.Logger
//	client, err := unifiaccess.NewWithConfig(&unifiaccess.ClientConfig{
//		Host:   "192.168.1.1",
//		Token:  token,
//		Logger: logger,
//	})
//
// Supported log levels:
//   - Debug: Detailed diagnostic information
//   - Info: General informational messages
//   - Warn: Warning messages for potentially problematic situations
//   - Error: Error messages for failures
//
// Ready-made implementations live in the subpackages:
//   - zerologger: Logger backed by github.com/rs/zerolog
//   - promrecorder: MetricsRecorder backed by Prometheus
//
// # MetricsRecorder Interface
//
// The MetricsRecorder interface tracks API client metrics:
//
//	metrics := myMetricsRecorder{} // implements observability.MetricsRecorder
//	client, err := unifiaccess.NewWithConfig(&unifiaccess.ClientConfig{
//		Host:    "192.168.1.1",
//		Token:   token,
//		Metrics: metrics,
//	})
//
// Tracked metrics include:
//   - HTTP request count, status codes, and duration
//   - Retry attempts for failed requests
//   - Rate limiting events and wait times
//   - Error occurrences by type
//
// # Default Behavior
//
// If no logger or metrics recorder is provided, the client uses no-op
// implementations that discard all events. This ensures zero overhead
// when observability is not needed.
package observability
