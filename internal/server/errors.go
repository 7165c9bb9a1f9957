package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")
	errNoHTTPAddress       = errors.New("http address is not configured")
)
