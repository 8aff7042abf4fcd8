// Package handler provides the Handler interface and its built-in
// implementations, the sinks a logging call is written to.
//
// All handlers are synchronous: Handle returns after the call's text has
// been handed to the destination.
//
// Built-in handlers:
//
//   - ConsoleHandler writes to any io.Writer (default: stderr). It formats
//     the whole call into one pooled buffer and issues a single Write under
//     a mutex, so output from concurrent calls never interleaves. When
//     color is enabled, severity-tagged calls are styled with fatih/color
//     and terminated by EndMarker, the ANSI reset sequence.
//   - ZapHandler forwards to a *zap.Logger.
//   - HclogHandler forwards to a hclog.Logger.
//   - SlogHandler forwards to a *slog.Logger.
//
// The forwarding handlers map severities onto the target's levels and pass
// the rendered text, minus its trailing newline, as the message.
//
// All handlers track processed and failed counts via the Stats type,
// which can be queried at runtime.
package handler
