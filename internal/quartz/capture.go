//go:build darwin

package quartz

/*
#include <stdlib.h>
#include <CoreGraphics/CoreGraphics.h>
#include <CoreFoundation/CoreFoundation.h>

typedef struct {
	uint8_t *pix;
	size_t  len;
	int     width;
	int     height;
	int     stride;
	int     bitsPerPixel;
} winshotCapture;

// captureWindow rasterizes a single window (excluding anything layered
// in front of it) at the given bounds and copies out the raw pixel data.
// Returns 0 on success.
static int captureWindow(uint32_t windowID, int x, int y, int w, int h,
		winshotCapture *out) {
	CGRect bounds = CGRectMake(x, y, w, h);
	CGImageRef image = CGWindowListCreateImage(
		bounds,
		kCGWindowListOptionIncludingWindow,
		windowID,
		kCGWindowImageBoundsIgnoreFraming);
	if (image == NULL) {
		return 1;
	}

	CGDataProviderRef provider = CGImageGetDataProvider(image);
	if (provider == NULL) {
		CGImageRelease(image);
		return 2;
	}
	CFDataRef data = CGDataProviderCopyData(provider);
	if (data == NULL) {
		CGImageRelease(image);
		return 3;
	}

	out->width = (int)CGImageGetWidth(image);
	out->height = (int)CGImageGetHeight(image);
	out->stride = (int)CGImageGetBytesPerRow(image);
	out->bitsPerPixel = (int)CGImageGetBitsPerPixel(image);
	out->len = (size_t)CFDataGetLength(data);
	out->pix = malloc(out->len);
	if (out->pix == NULL) {
		CFRelease(data);
		CGImageRelease(image);
		return 4;
	}
	CFDataGetBytes(data, CFRangeMake(0, out->len), out->pix);

	CFRelease(data);
	CGImageRelease(image);
	return 0;
}
*/
import "C"
import (
	"fmt"
	"unsafe"
)

// Image is a raw BGRA pixel buffer copied out of a CGImage.
type Image struct {
	Pix          []byte
	Width        int
	Height       int
	Stride       int
	BitsPerPixel int
}

// CaptureWindow rasterizes only the given window at its current bounds.
// A nil image from the window server (window closed between list and
// capture) is reported as an error for the caller to classify.
func CaptureWindow(windowID uint32, x, y, width, height int) (*Image, error) {
	var out C.winshotCapture
	rc := C.captureWindow(C.uint32_t(windowID), C.int(x), C.int(y),
		C.int(width), C.int(height), &out)
	switch rc {
	case 0:
	case 1:
		return nil, fmt.Errorf("CGWindowListCreateImage returned no image for window %d", windowID)
	case 2:
		return nil, fmt.Errorf("no data provider for window %d image", windowID)
	case 3:
		return nil, fmt.Errorf("failed to copy pixel data for window %d", windowID)
	default:
		return nil, fmt.Errorf("out of memory copying pixel data for window %d", windowID)
	}
	defer C.free(unsafe.Pointer(out.pix))

	pix := C.GoBytes(unsafe.Pointer(out.pix), C.int(out.len))
	return &Image{
		Pix:          pix,
		Width:        int(out.width),
		Height:       int(out.height),
		Stride:       int(out.stride),
		BitsPerPixel: int(out.bitsPerPixel),
	}, nil
}
