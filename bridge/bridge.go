// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package bridge

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/gogpu/ggview"
)

// Conn sends requests and reads responses in order.
type Conn interface {
	Send(id int64, method string, params any) error
	Read() (Response, error)
}

// Bridge owns the pipes to a child process.
type Bridge struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Reader

	mu        sync.Mutex
	closeOnce sync.Once
	closeErr  error
}

// Start spawns name with args, connecting to its standard input and
// output. Standard error is inherited. Cancelling ctx kills the child.
func Start(ctx context.Context, name string, args ...string) (*Bridge, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("bridge: stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("bridge: stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("bridge: start %q: %w", name, err)
	}
	ggview.Logger().Info("bridge: started", "name", name, "pid", cmd.Process.Pid)

	b := New(stdin, stdout)
	b.cmd = cmd
	return b, nil
}

// New creates a bridge over an existing pair of streams.
func New(w io.WriteCloser, r io.Reader) *Bridge {
	return &Bridge{
		stdin:  w,
		stdout: bufio.NewReader(r),
	}
}

// Send writes one request line. Concurrent calls never interleave lines.
func (b *Bridge) Send(id int64, method string, params any) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return SendRequest(b.stdin, id, method, params)
}

// Read blocks until the next response line arrives.
func (b *Bridge) Read() (Response, error) {
	return ReadResponse(b.stdout)
}

// Close closes the child's standard input and waits for it to exit.
func (b *Bridge) Close() error {
	b.closeOnce.Do(func() {
		err := b.stdin.Close()
		if b.cmd != nil {
			err = errors.Join(err, b.cmd.Wait())
		}
		if err != nil {
			b.closeErr = fmt.Errorf("bridge: close: %w", err)
		}
	})
	return b.closeErr
}

var _ Conn = (*Bridge)(nil)
