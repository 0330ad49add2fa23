// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/ggview/render"
)

// GLTarget is a render target backed by CPU memory and presented through a
// GL texture. It must be used on the thread that owns the GL context.
type GLTarget struct {
	img     *image.RGBA
	texture uint32
	fbo     uint32
	texW    int
	texH    int
}

// NewGLTarget allocates the texture and framebuffer used for presenting.
func NewGLTarget(width, height int) *GLTarget {
	t := &GLTarget{img: image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))}
	gl.GenTextures(1, &t.texture)
	gl.GenFramebuffers(1, &t.fbo)
	return t
}

// Width returns the target width in pixels.
func (t *GLTarget) Width() int { return t.img.Bounds().Dx() }

// Height returns the target height in pixels.
func (t *GLTarget) Height() int { return t.img.Bounds().Dy() }

// Format returns RGBA8Unorm, the layout uploaded with gl.RGBA.
func (t *GLTarget) Format() gputypes.TextureFormat { return gputypes.TextureFormatRGBA8Unorm }

// Pixels returns the CPU pixel memory.
func (t *GLTarget) Pixels() []byte { return t.img.Pix }

// Stride returns the number of bytes per row.
func (t *GLTarget) Stride() int { return t.img.Stride }

// Resize reallocates the CPU pixel memory. The texture follows on the
// next Present.
func (t *GLTarget) Resize(width, height int) {
	t.img = image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
}

// Present uploads the pixels and copies them to the default framebuffer,
// flipping rows so that row 0 ends up at the top of the window.
func (t *GLTarget) Present() error {
	w, h := t.Width(), t.Height()
	if w == 0 || h == 0 {
		return nil
	}

	gl.BindTexture(gl.TEXTURE_2D, t.texture)
	if w != t.texW || h != t.texH {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)

		gl.BindFramebuffer(gl.READ_FRAMEBUFFER, t.fbo)
		gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, t.texture, 0)
		if status := gl.CheckFramebufferStatus(gl.READ_FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
			gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
			return fmt.Errorf("window: framebuffer incomplete: 0x%x", status)
		}
		t.texW, t.texH = w, h
	}
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(t.img.Stride/4))
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(t.img.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, t.fbo)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(w), int32(h))
	gl.BlitFramebuffer(0, 0, int32(w), int32(h), 0, int32(h), int32(w), 0, gl.COLOR_BUFFER_BIT, gl.NEAREST)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	if e := gl.GetError(); e != gl.NO_ERROR {
		return fmt.Errorf("window: gl error 0x%x", e)
	}
	return nil
}

// Close releases the GL objects.
func (t *GLTarget) Close() {
	gl.DeleteFramebuffers(1, &t.fbo)
	gl.DeleteTextures(1, &t.texture)
}

var (
	_ render.RenderTarget = (*GLTarget)(nil)
	_ render.Resizer      = (*GLTarget)(nil)
	_ render.Presenter    = (*GLTarget)(nil)
)
