// Package api
// Author: eotpcomic <eotpcomic@gmail.com>
//
// Common error variables for the library.

package api

import "errors"

// Common errors used across the library.
var (
	// ErrPoolClosed indicates the handle pool has been shut down.
	ErrPoolClosed = errors.New("handle pool is closed")

	// ErrInvalidArgument indicates an invalid constructor argument.
	ErrInvalidArgument = errors.New("invalid argument")
)
