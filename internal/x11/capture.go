//go:build linux

package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
)

// Image is a raw BGRA pixel buffer fetched from the X server.
type Image struct {
	Pix          []byte
	Width        int
	Height       int
	Stride       int
	BitsPerPixel int
}

// CaptureWindow fetches the pixel content of a single window drawable.
// GetImage reads the window's own backing pixels, so windows overlapping
// it in front do not occlude the result on a compositing WM. width and
// height bound the request to the caller's most recent geometry.
func (c *Connection) CaptureWindow(windowID uint32, width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid capture geometry %dx%d", width, height)
	}

	reply, err := xproto.GetImage(
		c.XUtil.Conn(),
		xproto.ImageFormatZPixmap,
		xproto.Drawable(windowID),
		0, 0,
		uint16(width), uint16(height),
		0xffffffff,
	).Reply()
	if err != nil {
		return nil, fmt.Errorf("GetImage failed for window %d: %w", windowID, err)
	}
	if len(reply.Data) == 0 {
		return nil, fmt.Errorf("GetImage returned no data for window %d", windowID)
	}

	stride := len(reply.Data) / height
	if stride < width*4 {
		return nil, fmt.Errorf("unexpected pixel layout for window %d: depth %d, %d bytes for %dx%d",
			windowID, reply.Depth, len(reply.Data), width, height)
	}

	pix := reply.Data
	if reply.Depth == 24 {
		// Depth-24 ZPixmap data is BGRX on little-endian displays; the
		// X byte is undefined. Force it opaque so the BGRA contract
		// holds downstream.
		for row := 0; row < height; row++ {
			base := row * stride
			for x := 0; x < width; x++ {
				pix[base+x*4+3] = 0xff
			}
		}
	}

	return &Image{
		Pix:          pix,
		Width:        width,
		Height:       height,
		Stride:       stride,
		BitsPerPixel: 32,
	}, nil
}
