// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package bridge

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrIncompleteLine is returned when the stream ends in the middle of a
// line. It wraps io.ErrUnexpectedEOF.
var ErrIncompleteLine = fmt.Errorf("bridge: incomplete line: %w", io.ErrUnexpectedEOF)

// Request is one outbound message.
type Request struct {
	ID     int64  `json:"id"`
	Method string `json:"method"`
	Params any    `json:"params"`
}

// SendRequest writes {id, method, params} to w as one JSON line with a
// single Write call.
func SendRequest(w io.Writer, id int64, method string, params any) error {
	data, err := json.Marshal(Request{ID: id, Method: method, Params: params})
	if err != nil {
		return fmt.Errorf("bridge: marshal %s request: %w", method, err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("bridge: write %s request: %w", method, err)
	}
	return nil
}

// Response is one line read from the engine, without its line terminator.
type Response struct {
	Raw string
}

// ReadResponse blocks until a full line is available and returns it with
// the trailing "\n" (and "\r") removed. A stream that ends before the
// newline yields ErrIncompleteLine; a stream that ends between lines yields
// io.EOF.
func ReadResponse(r *bufio.Reader) (Response, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return Response{}, fmt.Errorf("%w: %q", ErrIncompleteLine, line)
			}
			return Response{}, io.EOF
		}
		return Response{}, fmt.Errorf("bridge: read response: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return Response{Raw: line}, nil
}

// String returns the raw line.
func (r Response) String() string { return r.Raw }

// Valid reports whether the line is well-formed JSON.
func (r Response) Valid() bool {
	return gjson.Valid(r.Raw)
}

// ID returns the numeric "id" field of the response, if present.
func (r Response) ID() (int64, bool) {
	v := gjson.Get(r.Raw, "id")
	if v.Type != gjson.Number {
		return 0, false
	}
	return v.Int(), true
}

// Result returns the "result" field of the response.
func (r Response) Result() gjson.Result {
	return gjson.Get(r.Raw, "result")
}

// Error returns the "error" field of the response.
func (r Response) Error() gjson.Result {
	return gjson.Get(r.Raw, "error")
}

// Get returns the value at a gjson path.
func (r Response) Get(path string) gjson.Result {
	return gjson.Get(r.Raw, path)
}
