// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import "errors"

var (
	// ErrNotInitialized is returned when a scene is rebuilt before Init.
	ErrNotInitialized = errors.New("frame: coordinator not initialized")

	// ErrAlreadyInitialized is returned by a second Init call.
	ErrAlreadyInitialized = errors.New("frame: coordinator already initialized")
)
