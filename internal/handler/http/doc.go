// Package http implements the HTTP transport layer of the device-sync
// service.
//
// It exposes route wiring, request handlers, and middleware for the local
// device API, sale forwarding, the manual sync trigger, build info and
// prometheus metrics.
// Request tracing, access logging and response compression are handled in
// this package before requests are delegated to the service layer.
package http
