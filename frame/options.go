// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"log/slog"

	"github.com/gogpu/ggview/scene"
)

// EpochPolicy decides the epoch attached to each submission.
type EpochPolicy uint8

const (
	// EpochStatic submits every scene with epoch 0.
	EpochStatic EpochPolicy = iota

	// EpochIncrement bumps the epoch on every submission after the first.
	EpochIncrement
)

// String returns the policy name.
func (p EpochPolicy) String() string {
	switch p {
	case EpochStatic:
		return "static"
	case EpochIncrement:
		return "increment"
	default:
		return "unknown"
	}
}

// ParseEpochPolicy parses "static" or "increment".
func ParseEpochPolicy(s string) (EpochPolicy, bool) {
	switch s {
	case "static":
		return EpochStatic, true
	case "increment":
		return EpochIncrement, true
	}
	return EpochStatic, false
}

// DefaultBackground is the clear color used when none is configured.
var DefaultBackground = scene.ColorF{R: 0.3, G: 0.1, B: 0.1, A: 1}

// Option configures a Coordinator.
type Option func(*options)

type options struct {
	epochPolicy EpochPolicy
	pipeline    scene.PipelineID
	background  scene.ColorF
	sample      scene.SampleOptions
	logger      *slog.Logger
}

func defaultOptions() options {
	return options{
		background: DefaultBackground,
		sample:     scene.DefaultSampleOptions(),
	}
}

// WithEpochPolicy sets the epoch policy. The default is EpochStatic.
func WithEpochPolicy(p EpochPolicy) Option {
	return func(o *options) {
		o.epochPolicy = p
	}
}

// WithPipelineID sets the pipeline every scene is built for. The default
// is the zero pipeline.
func WithPipelineID(p scene.PipelineID) Option {
	return func(o *options) {
		o.pipeline = p
	}
}

// WithBackground sets the clear color submitted with every scene.
func WithBackground(c scene.ColorF) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithSampleOptions configures the scene built for each viewport.
func WithSampleOptions(s scene.SampleOptions) Option {
	return func(o *options) {
		o.sample = s
	}
}

// WithLogger sets the logger. The default is ggview.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
