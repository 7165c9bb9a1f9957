package adapter

import "errors"

// Status-class errors produced by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("remote internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("remote service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected http status")
)

// Body errors.
var (
	ErrEmptyResponse     = errors.New("empty response body")
	ErrMalformedResponse = errors.New("malformed response body")
)
