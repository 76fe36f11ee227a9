// Package server runs the store's HTTP transport.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown. Shutdown cancels the base context of every request so that
// long-lived watch streams end instead of holding the drain open.
package server
