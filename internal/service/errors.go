package service

import "errors"

var (
	ErrAuth      = errors.New("authentication failed")
	ErrTransport = errors.New("remote transport error")

	ErrInvalidDevice = errors.New("invalid device provided")

	ErrInvalidSale        = errors.New("invalid sale provided")
	ErrSaleRejected       = errors.New("sale rejected by remote authority")
	ErrRemoteSaleNotFound = errors.New("sale is unknown to remote authority")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
