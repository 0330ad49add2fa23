// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command ggdemo renders the sample scene offscreen and saves it as PNG.
package main

import (
	"flag"
	"image/png"
	"log"
	"os"
	"time"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ggview/frame"
	"github.com/gogpu/ggview/render"
	"github.com/gogpu/ggview/text"
)

// frameSignal adapts a channel to frame.Waker.
type frameSignal chan struct{}

func (s frameSignal) Wakeup() {
	select {
	case s <- struct{}{}:
	default:
	}
}

func main() {
	var (
		width  = flag.Int("width", 800, "image width")
		height = flag.Int("height", 600, "image height")
		scale  = flag.Float64("scale", 1, "device pixel ratio")
		output = flag.String("output", "demo.png", "output file")
	)
	flag.Parse()

	font, err := text.ParseFont(goregular.TTF)
	if err != nil {
		log.Fatalf("Failed to parse font: %v", err)
	}

	target := render.NewPixmapTarget(0, 0)
	renderer, api := render.New(render.WithDevicePixelRatio(float32(*scale)), render.WithTarget(target))
	defer renderer.Close()

	ready := make(frameSignal, 1)
	renderer.SetRenderNotifier(frame.NewNotifier(ready))

	coord := frame.NewCoordinator(api, renderer, font)
	if err := coord.Init(goregular.TTF, *width, *height); err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}

	select {
	case <-ready:
	case <-time.After(10 * time.Second):
		log.Fatalf("Timed out waiting for the frame")
	}
	renderer.Update()
	dw := int(float64(*width)**scale + 0.5)
	dh := int(float64(*height)**scale + 0.5)
	if err := renderer.Render(dw, dh); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	if err := png.Encode(f, target.Image()); err != nil {
		_ = f.Close()
		log.Fatalf("Failed to save: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, dw, dh)
}
