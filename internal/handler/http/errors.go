// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Petrenko

package http

import "errors"

// Authorization-header parsing failures reported by the auth middleware.
// All of them produce a 401 response; the distinction matters only for
// logging and tests.
var (
	// ErrEmptyAuthorizationHeader — the request carried no "Authorization"
	// header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader — the header could not be split into a
	// scheme and a token value.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken — the scheme was present but the token value was blank.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
