package client

import "errors"

var (
	ErrUnavailable  = errors.New("credential service unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)
