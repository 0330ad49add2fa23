// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package bridge talks to an external editing engine over its standard
// input and output.
//
// Requests are single JSON objects {"id", "method", "params"}, each written
// as one newline-terminated line. Responses are read back one line at a
// time in FIFO order; the bridge does not correlate them with requests by
// id. Reads block without a timeout, so the bridge is meant for a one-time
// startup exchange such as Handshake, not for the render loop.
package bridge
