//go:build darwin

package platform

import "github.com/1broseidon/winshot/internal/quartz"

// New opens the platform backend for macOS, backed by CoreGraphics.
func New() (Backend, error) {
	return &darwinBackend{}, nil
}

// darwinBackend is stateless: every call goes straight to the window
// server. There is no persistent connection to close.
type darwinBackend struct{}

var _ Backend = (*darwinBackend)(nil)

func (b *darwinBackend) ListWindows() ([]Window, error) {
	wins, err := quartz.ListWindows()
	if err != nil {
		return nil, err
	}
	out := make([]Window, 0, len(wins))
	for _, w := range wins {
		out = append(out, Window{
			ID:    WindowID(w.ID),
			Name:  w.Name,
			Owner: w.Owner,
			Bounds: Rect{
				X:      w.X,
				Y:      w.Y,
				Width:  w.Width,
				Height: w.Height,
			},
		})
	}
	return out, nil
}

func (b *darwinBackend) CaptureWindow(id WindowID, bounds Rect) (*RawImage, error) {
	img, err := quartz.CaptureWindow(uint32(id), bounds.X, bounds.Y, bounds.Width, bounds.Height)
	if err != nil {
		return nil, err
	}
	return &RawImage{
		Pix:          img.Pix,
		Width:        img.Width,
		Height:       img.Height,
		Stride:       img.Stride,
		BitsPerPixel: img.BitsPerPixel,
	}, nil
}

func (b *darwinBackend) PostKey(code uint16, down bool, mask uint64) error {
	return quartz.PostKey(code, down, mask)
}

func (b *darwinBackend) ProbeKey() error {
	return quartz.ProbeKey()
}

func (b *darwinBackend) Close() error { return nil }
