// Package capture turns a window ID into an encoded PNG screenshot.
package capture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	xdraw "golang.org/x/image/draw"

	"github.com/1broseidon/winshot/internal/platform"
	"github.com/1broseidon/winshot/internal/window"
)

// ErrCaptureFailed is returned when the window server produced no
// usable image. The window may have closed between lookup and
// rasterization; that race is the caller's to retry.
var ErrCaptureFailed = errors.New("window capture failed")

// Options bounds the encoded output. Zero values mean no limit. When a
// limit is set the image is downscaled preserving aspect ratio; images
// already within bounds are left untouched.
type Options struct {
	MaxWidth  int
	MaxHeight int
}

// Pipeline captures window content through a platform backend.
type Pipeline struct {
	backend platform.Backend
	dir     *window.Directory
}

// NewPipeline creates a capture pipeline sharing the directory's
// backend.
func NewPipeline(backend platform.Backend, dir *window.Directory) *Pipeline {
	return &Pipeline{backend: backend, dir: dir}
}

// CaptureWindow captures the current content of one window and encodes
// it as PNG. The window list is re-queried on every call since bounds
// change between calls. Returns window.ErrNotFound when the ID is not
// on screen, ErrCaptureFailed when rasterization or decoding fails.
// Partial images are never returned.
func (p *Pipeline) CaptureWindow(id uint32, opts Options) ([]byte, error) {
	rec, ok := p.dir.Find(id)
	if !ok {
		return nil, fmt.Errorf("window %d: %w", id, window.ErrNotFound)
	}

	raw, err := p.backend.CaptureWindow(platform.WindowID(id), rec.Bounds)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCaptureFailed, err)
	}

	img, err := rgbaFromBGRA(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCaptureFailed, err)
	}

	return encodePNG(scaleDown(img, opts))
}

// scaleDown fits img inside the Options bounds, preserving aspect
// ratio. ApproxBiLinear keeps this fast; screenshots are consumed by
// models and humans, not re-edited.
func scaleDown(img *image.RGBA, opts Options) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if (opts.MaxWidth <= 0 || w <= opts.MaxWidth) && (opts.MaxHeight <= 0 || h <= opts.MaxHeight) {
		return img
	}

	scale := 1.0
	if opts.MaxWidth > 0 && w > opts.MaxWidth {
		scale = float64(opts.MaxWidth) / float64(w)
	}
	if opts.MaxHeight > 0 && h > opts.MaxHeight {
		if s := float64(opts.MaxHeight) / float64(h); s < scale {
			scale = s
		}
	}

	dw := int(float64(w) * scale)
	dh := int(float64(h) * scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: png encode: %v", ErrCaptureFailed, err)
	}
	return buf.Bytes(), nil
}
