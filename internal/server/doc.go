// Package server wires and runs the HTTP transport of the device-sync
// service, including startup and graceful shutdown when the run context is
// cancelled.
package server
