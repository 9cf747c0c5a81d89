package sort_suite

import "errors"

var (
	ErrInvalidToken       = errors.New("invalid integer token")
	ErrUnknownAlgorithm   = errors.New("unknown algorithm")
	ErrNotImplemented     = errors.New("algorithm not implemented")
	ErrVerificationFailed = errors.New("verification failed")
	ErrUnknownFormat      = errors.New("unknown report format")
)
