// Package client assembles the terminal client runtime: transport adapter,
// local cache, services, background workers and the TUI.
package client
