package capture

import (
	"fmt"
	"image"

	"github.com/1broseidon/winshot/internal/platform"
)

// rgbaFromBGRA reinterprets a raw BGRA buffer as an RGBA image. The
// stride-derived row width may exceed the logical width due to
// alignment padding; only the first Width columns are read. The channel
// permutation is bit-exact: out[0..3] = in[2], in[1], in[0], in[3].
func rgbaFromBGRA(raw *platform.RawImage) (*image.RGBA, error) {
	if raw == nil {
		return nil, fmt.Errorf("nil pixel buffer")
	}
	if raw.BitsPerPixel != 32 {
		return nil, fmt.Errorf("unsupported pixel depth %d bits per pixel", raw.BitsPerPixel)
	}
	if raw.Width <= 0 || raw.Height <= 0 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", raw.Width, raw.Height)
	}
	if raw.Stride < raw.Width*4 {
		return nil, fmt.Errorf("stride %d too small for width %d", raw.Stride, raw.Width)
	}
	if len(raw.Pix) < raw.Stride*raw.Height {
		return nil, fmt.Errorf("pixel buffer truncated: %d bytes for %dx%d stride %d",
			len(raw.Pix), raw.Width, raw.Height, raw.Stride)
	}

	out := image.NewRGBA(image.Rect(0, 0, raw.Width, raw.Height))
	for y := 0; y < raw.Height; y++ {
		src := raw.Pix[y*raw.Stride:]
		dst := out.Pix[y*out.Stride:]
		for x := 0; x < raw.Width; x++ {
			si := x * 4
			di := x * 4
			dst[di+0] = src[si+2]
			dst[di+1] = src[si+1]
			dst[di+2] = src[si+0]
			dst[di+3] = src[si+3]
		}
	}
	return out, nil
}
