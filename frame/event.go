// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import "fmt"

// Event is a window event.
type Event interface {
	isEvent()
}

// KeyState tells whether a key went down or up.
type KeyState uint8

const (
	Pressed KeyState = iota
	Released
)

// String returns the state name.
func (s KeyState) String() string {
	if s == Released {
		return "Released"
	}
	return "Pressed"
}

// Closed is sent when the user asked to close the window.
type Closed struct{}

// KeyboardInput is a key press or release. ScanCode is the platform scan
// code; KeyCode is the toolkit key, or -1 when unknown.
type KeyboardInput struct {
	State    KeyState
	ScanCode uint32
	KeyCode  int
}

// Resized carries the new inner size in logical pixels.
type Resized struct {
	Width, Height int
}

// Wakeup is delivered after a Waker.Wakeup call.
type Wakeup struct{}

// Refresh asks for the window contents to be redrawn.
type Refresh struct{}

func (Closed) isEvent()        {}
func (KeyboardInput) isEvent() {}
func (Resized) isEvent()       {}
func (Wakeup) isEvent()        {}
func (Refresh) isEvent()       {}

func (k KeyboardInput) String() string {
	return fmt.Sprintf("KeyboardInput{%v scan=%d key=%d}", k.State, k.ScanCode, k.KeyCode)
}
