// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package bridge

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sync"
	"testing"

	"github.com/tidwall/gjson"
)

// fakeEngine answers every request line with {"id":<id>,"result":<method>}
// until its input closes. If stopAfter > 0 it closes its output after that
// many responses.
func fakeEngine(t *testing.T, stopAfter int) *Bridge {
	t.Helper()
	reqR, reqW := io.Pipe()
	respR, respW := io.Pipe()

	out := make(chan string, 16)
	go func() {
		defer respW.Close()
		for line := range out {
			if _, err := io.WriteString(respW, line); err != nil {
				return
			}
		}
	}()
	go func() {
		in := bufio.NewReader(reqR)
		for n := 0; stopAfter <= 0 || n < stopAfter; n++ {
			line, err := in.ReadString('\n')
			if err != nil {
				break
			}
			id := gjson.Get(line, "id").Int()
			method := gjson.Get(line, "method").String()
			out <- fmt.Sprintf("{\"id\":%d,\"result\":%q}\n", id, method)
		}
		close(out)
		// Keep draining so senders never block on the pipe.
		_, _ = io.Copy(io.Discard, in)
	}()

	b := New(reqW, respR)
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func TestHandshakeOrder(t *testing.T) {
	b := fakeEngine(t, 0)

	resps, err := Handshake(b, HandshakeConfig{Path: "notes.txt", Tab: "0"})
	if err != nil {
		t.Fatalf("Handshake: %v", err)
	}
	if len(resps) != 2 {
		t.Fatalf("responses = %d, want 2", len(resps))
	}
	want := []string{
		`{"id":0,"result":"new_tab"}`,
		`{"id":1,"result":"edit"}`,
	}
	for i, r := range resps {
		if r.Raw != want[i] {
			t.Errorf("response %d = %q, want %q", i, r.Raw, want[i])
		}
	}
}

func TestHandshakeChildExits(t *testing.T) {
	b := fakeEngine(t, 1)

	resps, err := Handshake(b, HandshakeConfig{Path: "x", Tab: "0"})
	if !errors.Is(err, io.EOF) {
		t.Fatalf("Handshake error = %v, want %v", err, io.EOF)
	}
	if len(resps) != 1 {
		t.Errorf("responses before failure = %d, want 1", len(resps))
	}
}

func TestSendConcurrentLines(t *testing.T) {
	reqR, reqW := io.Pipe()
	b := New(reqW, eofReader{})

	const senders, perSender = 8, 50
	lines := make(chan string, senders*perSender)
	go func() {
		in := bufio.NewReader(reqR)
		for {
			line, err := in.ReadString('\n')
			if err != nil {
				close(lines)
				return
			}
			lines <- line
		}
	}()

	var wg sync.WaitGroup
	for s := range senders {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perSender {
				params := map[string]any{"sender": s, "seq": i, "pad": "xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx"}
				if err := b.Send(int64(s*perSender+i), "ping", params); err != nil {
					t.Errorf("Send: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
	_ = reqW.Close()

	n := 0
	for line := range lines {
		if !gjson.Valid(line) {
			t.Errorf("interleaved line %q", line)
		}
		n++
	}
	if n != senders*perSender {
		t.Errorf("lines = %d, want %d", n, senders*perSender)
	}
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }

func TestStartCatEcho(t *testing.T) {
	if _, err := exec.LookPath("cat"); err != nil {
		t.Skip("cat not on PATH")
	}
	b, err := Start(context.Background(), "cat")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	resps, err := Handshake(b, HandshakeConfig{Path: "/tmp/a.txt", Tab: "1"})
	if err != nil {
		t.Fatalf("Handshake: %v", err)
	}
	want := []string{
		`{"id":0,"method":"new_tab","params":[]}`,
		`{"id":1,"method":"edit","params":{"method":"open","tab":"1","params":{"filename":"/tmp/a.txt"}}}`,
	}
	for i, r := range resps {
		if r.Raw != want[i] {
			t.Errorf("echo %d = %q, want %q", i, r.Raw, want[i])
		}
	}

	// Nothing past the two handshake lines was consumed.
	if err := b.Send(2, "after", nil); err != nil {
		t.Fatalf("Send: %v", err)
	}
	r, err := b.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if id, _ := r.ID(); id != 2 {
		t.Errorf("next response id = %d, want 2", id)
	}

	if err := b.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestStartMissingExecutable(t *testing.T) {
	_, err := Start(context.Background(), "ggview-no-such-engine")
	if err == nil {
		t.Fatal("Start succeeded for a missing executable")
	}
	if !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("error = %v, want %v", err, exec.ErrNotFound)
	}
}
