// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import "context"

// DefaultQuitScanCode is the scan code that ends the loop: Escape on X11.
const DefaultQuitScanCode = 9

// LoopOption configures Run.
type LoopOption func(*loopOptions)

type loopOptions struct {
	quitScanCode uint32
	notifier     *Notifier
}

// WithQuitScanCode sets the scan code that ends the loop.
func WithQuitScanCode(code uint32) LoopOption {
	return func(o *loopOptions) {
		o.quitScanCode = code
	}
}

// WithNotifier sets the notifier whose pending wakeup is cleared on each
// iteration.
func WithNotifier(n *Notifier) LoopOption {
	return func(o *loopOptions) {
		o.notifier = n
	}
}

// Run processes window events until the window is closed, the quit key is
// seen or ctx is done. Every iteration that does not end the loop calls
// c.Tick, whatever the event.
//
// When win also implements Waker, cancelling ctx wakes it so Run can
// return. Run returns ctx.Err() on cancellation and nil on a normal quit.
func Run(ctx context.Context, win Window, c *Coordinator, opts ...LoopOption) error {
	lo := loopOptions{quitScanCode: DefaultQuitScanCode}
	for _, opt := range opts {
		opt(&lo)
	}
	if w, ok := win.(Waker); ok {
		stop := context.AfterFunc(ctx, w.Wakeup)
		defer stop()
	}

	log := c.log()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		ev := win.WaitEvent()
		if err := ctx.Err(); err != nil {
			return err
		}
		switch ev := ev.(type) {
		case Closed:
			log.Info("frame: window closed")
			return nil
		case KeyboardInput:
			if ev.ScanCode == lo.quitScanCode {
				log.Info("frame: quit key", "scan_code", ev.ScanCode)
				return nil
			}
		case Resized:
			if err := c.OnResize(ev.Width, ev.Height); err != nil {
				return err
			}
		}
		if lo.notifier != nil {
			lo.notifier.Drain()
		}
		c.Tick(win)
	}
}
