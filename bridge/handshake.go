// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package bridge

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/sjson"

	"github.com/gogpu/ggview"
)

// HandshakeConfig names the file opened during the handshake and the tab
// it is opened in.
type HandshakeConfig struct {
	Path string
	Tab  string
}

// OpenParams returns the params of an "edit" request that opens path in
// tab: {"method":"open","tab":<tab>,"params":{"filename":<path>}}.
func OpenParams(tab, path string) (json.RawMessage, error) {
	raw, err := sjson.SetBytes(nil, "method", "open")
	if err == nil {
		raw, err = sjson.SetBytes(raw, "tab", tab)
	}
	if err == nil {
		raw, err = sjson.SetBytes(raw, "params.filename", path)
	}
	if err != nil {
		return nil, fmt.Errorf("bridge: open params: %w", err)
	}
	return raw, nil
}

// Handshake opens a tab and a file in it: it sends "new_tab" (id 0) and
// "edit"/"open" (id 1), then reads exactly two responses in order and
// logs them. Responses are not matched by id.
func Handshake(c Conn, cfg HandshakeConfig) ([]Response, error) {
	if err := c.Send(0, "new_tab", []any{}); err != nil {
		return nil, fmt.Errorf("bridge: handshake: %w", err)
	}
	edit, err := OpenParams(cfg.Tab, cfg.Path)
	if err != nil {
		return nil, err
	}
	if err := c.Send(1, "edit", edit); err != nil {
		return nil, fmt.Errorf("bridge: handshake: %w", err)
	}

	log := ggview.Logger()
	resps := make([]Response, 0, 2)
	for i := range 2 {
		r, err := c.Read()
		if err != nil {
			return resps, fmt.Errorf("bridge: handshake response %d: %w", i, err)
		}
		log.Info("bridge: response", "index", i, "line", r.Raw)
		resps = append(resps, r)
	}
	return resps, nil
}
