// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

// Option configures a Renderer created by New.
type Option func(*options)

type options struct {
	dpr       float32
	target    RenderTarget
	queueSize int
	namespace uint32
}

func defaultOptions() options {
	return options{
		dpr:       1,
		queueSize: 16,
	}
}

// WithDevicePixelRatio sets the number of device pixels per layout pixel
// used when compositing. Non-positive values are ignored.
func WithDevicePixelRatio(dpr float32) Option {
	return func(o *options) {
		if dpr > 0 {
			o.dpr = dpr
		}
	}
}

// WithTarget sets the target that Render draws into. The default is an
// empty PixmapTarget that grows to the requested size.
func WithTarget(t RenderTarget) Option {
	return func(o *options) {
		o.target = t
	}
}

// WithQueueSize sets how many API messages may be queued before API calls
// block on the backend.
func WithQueueSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.queueSize = n
		}
	}
}

// WithNamespace sets the namespace of the font keys handed out by the API.
func WithNamespace(ns uint32) Option {
	return func(o *options) {
		o.namespace = ns
	}
}
