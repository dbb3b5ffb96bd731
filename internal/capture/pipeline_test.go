package capture

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	"github.com/1broseidon/winshot/internal/platform"
	"github.com/1broseidon/winshot/internal/window"
)

type fakeBackend struct {
	windows    []platform.Window
	raw        *platform.RawImage
	captureErr error
	captured   []platform.WindowID
}

func (f *fakeBackend) ListWindows() ([]platform.Window, error) { return f.windows, nil }

func (f *fakeBackend) CaptureWindow(id platform.WindowID, bounds platform.Rect) (*platform.RawImage, error) {
	f.captured = append(f.captured, id)
	if f.captureErr != nil {
		return nil, f.captureErr
	}
	return f.raw, nil
}

func (f *fakeBackend) PostKey(code uint16, down bool, mask uint64) error { return nil }
func (f *fakeBackend) ProbeKey() error                                   { return nil }
func (f *fakeBackend) Close() error                                      { return nil }

// solidBGRA builds a raw buffer filled with one BGRA pixel value.
func solidBGRA(width, height int, b, g, r, a byte) *platform.RawImage {
	pix := make([]byte, width*height*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = b
		pix[i+1] = g
		pix[i+2] = r
		pix[i+3] = a
	}
	return &platform.RawImage{
		Pix: pix, Width: width, Height: height, Stride: width * 4, BitsPerPixel: 32,
	}
}

func newTestPipeline(backend *fakeBackend) *Pipeline {
	return NewPipeline(backend, window.NewDirectory(backend))
}

func TestCaptureWindowProducesPNG(t *testing.T) {
	backend := &fakeBackend{
		windows: []platform.Window{
			{ID: 42, Name: "Editor", Owner: "Code", Bounds: platform.Rect{Width: 4, Height: 3}},
		},
		raw: solidBGRA(4, 3, 10, 20, 30, 255),
	}

	data, err := newTestPipeline(backend).CaptureWindow(42, Options{})
	if err != nil {
		t.Fatalf("CaptureWindow error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("decoded size = %dx%d, want 4x3", b.Dx(), b.Dy())
	}

	// BGRA (10,20,30,255) decodes to RGBA (30,20,10,255).
	r, g, b, a := img.At(0, 0).RGBA()
	if r>>8 != 30 || g>>8 != 20 || b>>8 != 10 || a>>8 != 255 {
		t.Errorf("pixel = (%d,%d,%d,%d), want (30,20,10,255)", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestCaptureWindowGoneWindow(t *testing.T) {
	backend := &fakeBackend{windows: nil}

	_, err := newTestPipeline(backend).CaptureWindow(42, Options{})
	if !errors.Is(err, window.ErrNotFound) {
		t.Fatalf("error = %v, want window.ErrNotFound", err)
	}
	if len(backend.captured) != 0 {
		t.Errorf("backend capture attempted for missing window")
	}
}

func TestCaptureWindowBackendFailure(t *testing.T) {
	backend := &fakeBackend{
		windows: []platform.Window{
			{ID: 42, Name: "Editor", Owner: "Code", Bounds: platform.Rect{Width: 4, Height: 3}},
		},
		captureErr: errors.New("window server said no"),
	}

	_, err := newTestPipeline(backend).CaptureWindow(42, Options{})
	if !errors.Is(err, ErrCaptureFailed) {
		t.Fatalf("error = %v, want ErrCaptureFailed", err)
	}
}

func TestCaptureWindowMalformedBufferIsCaptureFailure(t *testing.T) {
	backend := &fakeBackend{
		windows: []platform.Window{
			{ID: 42, Name: "Editor", Owner: "Code", Bounds: platform.Rect{Width: 4, Height: 3}},
		},
		raw: &platform.RawImage{Pix: make([]byte, 3), Width: 4, Height: 3, Stride: 16, BitsPerPixel: 32},
	}

	_, err := newTestPipeline(backend).CaptureWindow(42, Options{})
	if !errors.Is(err, ErrCaptureFailed) {
		t.Fatalf("error = %v, want ErrCaptureFailed", err)
	}
}

func TestCaptureWindowDownscales(t *testing.T) {
	backend := &fakeBackend{
		windows: []platform.Window{
			{ID: 7, Name: "Big", Owner: "App", Bounds: platform.Rect{Width: 100, Height: 50}},
		},
		raw: solidBGRA(100, 50, 0, 0, 0, 255),
	}

	data, err := newTestPipeline(backend).CaptureWindow(7, Options{MaxWidth: 50})
	if err != nil {
		t.Fatalf("CaptureWindow error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 50 || b.Dy() != 25 {
		t.Errorf("decoded size = %dx%d, want 50x25 (aspect preserved)", b.Dx(), b.Dy())
	}
}

func TestScaleDownLeavesSmallImagesUntouched(t *testing.T) {
	backend := &fakeBackend{
		windows: []platform.Window{
			{ID: 7, Name: "Small", Owner: "App", Bounds: platform.Rect{Width: 10, Height: 10}},
		},
		raw: solidBGRA(10, 10, 1, 2, 3, 255),
	}

	data, err := newTestPipeline(backend).CaptureWindow(7, Options{MaxWidth: 100, MaxHeight: 100})
	if err != nil {
		t.Fatalf("CaptureWindow error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 10 {
		t.Errorf("decoded size = %dx%d, want 10x10", b.Dx(), b.Dy())
	}
}
