package capture

import (
	"testing"

	"github.com/1broseidon/winshot/internal/platform"
)

func TestRGBAFromBGRAPermutesChannels(t *testing.T) {
	raw := &platform.RawImage{
		Pix:          []byte{10, 20, 30, 255},
		Width:        1,
		Height:       1,
		Stride:       4,
		BitsPerPixel: 32,
	}

	img, err := rgbaFromBGRA(raw)
	if err != nil {
		t.Fatalf("rgbaFromBGRA error: %v", err)
	}

	want := []byte{30, 20, 10, 255}
	for i, w := range want {
		if img.Pix[i] != w {
			t.Errorf("Pix[%d] = %d, want %d", i, img.Pix[i], w)
		}
	}
}

func TestRGBAFromBGRAHonorsStridePadding(t *testing.T) {
	// 2x2 image with 4 bytes of row padding that must not leak into
	// the output.
	raw := &platform.RawImage{
		Pix: []byte{
			1, 2, 3, 4, 5, 6, 7, 8, 0xde, 0xad, 0xbe, 0xef,
			9, 10, 11, 12, 13, 14, 15, 16, 0xde, 0xad, 0xbe, 0xef,
		},
		Width:        2,
		Height:       2,
		Stride:       12,
		BitsPerPixel: 32,
	}

	img, err := rgbaFromBGRA(raw)
	if err != nil {
		t.Fatalf("rgbaFromBGRA error: %v", err)
	}

	want := []byte{
		3, 2, 1, 4, 7, 6, 5, 8,
		11, 10, 9, 12, 15, 14, 13, 16,
	}
	if len(img.Pix) != len(want) {
		t.Fatalf("len(Pix) = %d, want %d", len(img.Pix), len(want))
	}
	for i, w := range want {
		if img.Pix[i] != w {
			t.Errorf("Pix[%d] = %d, want %d", i, img.Pix[i], w)
		}
	}
}

func TestRGBAFromBGRARejectsMalformedBuffers(t *testing.T) {
	tests := []struct {
		name string
		raw  *platform.RawImage
	}{
		{"nil image", nil},
		{"wrong depth", &platform.RawImage{Pix: make([]byte, 4), Width: 1, Height: 1, Stride: 4, BitsPerPixel: 24}},
		{"zero dimensions", &platform.RawImage{Pix: nil, Width: 0, Height: 0, Stride: 0, BitsPerPixel: 32}},
		{"stride too small", &platform.RawImage{Pix: make([]byte, 16), Width: 2, Height: 2, Stride: 4, BitsPerPixel: 32}},
		{"buffer too short", &platform.RawImage{Pix: make([]byte, 8), Width: 2, Height: 2, Stride: 8, BitsPerPixel: 32}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := rgbaFromBGRA(tt.raw); err == nil {
				t.Error("rgbaFromBGRA returned nil error")
			}
		})
	}
}
