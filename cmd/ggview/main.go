// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command ggview opens a window showing shaped text over a few styled
// shapes, and optionally drives an external editing engine at startup.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/term"

	"github.com/gogpu/ggview"
	"github.com/gogpu/ggview/bridge"
	"github.com/gogpu/ggview/frame"
	"github.com/gogpu/ggview/render"
	"github.com/gogpu/ggview/scene"
	"github.com/gogpu/ggview/text"
	"github.com/gogpu/ggview/window"
)

func main() {
	var (
		fontPath    = flag.String("font", "", "TrueType/OpenType font file (default: embedded Go Regular)")
		core        = flag.String("core", "xi-core", "editing engine executable; empty disables it")
		file        = flag.String("file", "README.md", "file opened by the editing engine")
		tab         = flag.String("tab", "0", "tab the file is opened in")
		width       = flag.Int("width", 1024, "window width")
		height      = flag.Int("height", 768, "window height")
		debugGlyphs = flag.Bool("debug-glyphs", true, "draw em-box and pixel-box borders around glyphs")
		shaper      = flag.String("shaper", "simple", "text shaper: simple or harfbuzz")
		lang        = flag.String("lang", "", "BCP 47 language for harfbuzz shaping (default: en)")
		epochFlag   = flag.String("epoch", "static", "epoch policy: static or increment")
		background  = flag.String("background", "", "background color as #rrggbb (default: dark red)")
		verbose     = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	ggview.SetLogger(newLogger(level))

	policy, ok := frame.ParseEpochPolicy(*epochFlag)
	if !ok {
		log.Fatalf("unknown epoch policy %q", *epochFlag)
	}

	bg := frame.DefaultBackground
	if *background != "" {
		c, err := parseColor(*background)
		if err != nil {
			log.Fatalf("Invalid background: %v", err)
		}
		bg = c
	}

	fontBytes := goregular.TTF
	if *fontPath != "" {
		b, err := os.ReadFile(*fontPath)
		if err != nil {
			log.Fatalf("Failed to read font: %v", err)
		}
		fontBytes = b
	}
	font, err := loadFont(fontBytes, *shaper, *lang)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *core != "" {
		// The engine is left running; process exit reclaims it.
		b, err := bridge.Start(ctx, *core)
		if err != nil {
			log.Fatalf("Failed to start editing engine: %v", err)
		}
		if _, err := bridge.Handshake(b, bridge.HandshakeConfig{Path: *file, Tab: *tab}); err != nil {
			log.Fatalf("Editing engine handshake failed: %v", err)
		}
	}

	win, err := window.New(window.Config{Title: "ggview", Width: *width, Height: *height})
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer win.Close()

	w, h := win.InnerSize()
	dpr := win.HiDPIFactor()
	target := window.NewGLTarget(int(float32(w)*dpr), int(float32(h)*dpr))
	defer target.Close()

	renderer, api := render.New(render.WithDevicePixelRatio(dpr), render.WithTarget(target))
	defer renderer.Close()
	notifier := frame.NewNotifier(win)
	renderer.SetRenderNotifier(notifier)

	sample := scene.DefaultSampleOptions()
	sample.DebugGlyphBoxes = *debugGlyphs
	coord := frame.NewCoordinator(api, renderer, font,
		frame.WithEpochPolicy(policy),
		frame.WithSampleOptions(sample),
		frame.WithBackground(bg),
	)
	if err := coord.Init(fontBytes, w, h); err != nil {
		log.Fatalf("Failed to submit the first scene: %v", err)
	}

	if err := frame.Run(ctx, win, coord, frame.WithNotifier(notifier)); err != nil && ctx.Err() == nil {
		log.Fatalf("Event loop: %v", err)
	}
}

// loadFont parses data for the named shaper. lang only affects harfbuzz.
func loadFont(data []byte, shaper, lang string) (text.Font, error) {
	var (
		f   text.Font
		err error
	)
	switch shaper {
	case "harfbuzz":
		var sf *text.ShapedFont
		sf, err = text.ParseShapedFont(data)
		if err == nil && lang != "" {
			sf.SetLanguage(lang)
		}
		f = sf
	case "simple":
		f, err = text.ParseFont(data)
	default:
		return nil, fmt.Errorf("unknown shaper %q", shaper)
	}
	if err != nil {
		return nil, err
	}
	return text.NewCachedFont(f, 64), nil
}

// newLogger writes text logs to a terminal and JSON lines otherwise.
func newLogger(level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

func parseColor(s string) (scene.ColorF, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return scene.ColorF{}, err
	}
	c = c.Clamped()
	return scene.ColorF{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: 1}, nil
}
