//go:build darwin

package quartz

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation

#include <CoreGraphics/CoreGraphics.h>
#include <CoreFoundation/CoreFoundation.h>

typedef struct {
	uint32_t id;
	char name[256];
	char owner[256];
	int32_t x, y, width, height;
} winshotWindowInfo;

static void copyCFString(CFStringRef s, char *dst, size_t cap) {
	dst[0] = '\0';
	if (s == NULL) {
		return;
	}
	CFStringGetCString(s, dst, cap, kCFStringEncodingUTF8);
}

// listWindows fills out with up to max on-screen windows, front to back,
// and returns the number written. Returns -1 if the window server query
// itself failed.
static int listWindows(winshotWindowInfo *out, int max) {
	CFArrayRef list = CGWindowListCopyWindowInfo(
		kCGWindowListOptionOnScreenOnly, kCGNullWindowID);
	if (list == NULL) {
		return -1;
	}

	int n = 0;
	CFIndex count = CFArrayGetCount(list);
	for (CFIndex i = 0; i < count && n < max; i++) {
		CFDictionaryRef info = CFArrayGetValueAtIndex(list, i);

		CFNumberRef numRef = CFDictionaryGetValue(info, kCGWindowNumber);
		if (numRef == NULL) {
			continue;
		}
		int64_t windowID = 0;
		CFNumberGetValue(numRef, kCFNumberSInt64Type, &windowID);

		CGRect bounds = CGRectNull;
		CFDictionaryRef boundsRef = CFDictionaryGetValue(info, kCGWindowBounds);
		if (boundsRef == NULL ||
			!CGRectMakeWithDictionaryRepresentation(boundsRef, &bounds)) {
			continue;
		}

		winshotWindowInfo *w = &out[n];
		w->id = (uint32_t)windowID;
		copyCFString(CFDictionaryGetValue(info, kCGWindowName), w->name, sizeof(w->name));
		copyCFString(CFDictionaryGetValue(info, kCGWindowOwnerName), w->owner, sizeof(w->owner));
		w->x = (int32_t)bounds.origin.x;
		w->y = (int32_t)bounds.origin.y;
		w->width = (int32_t)bounds.size.width;
		w->height = (int32_t)bounds.size.height;
		n++;
	}

	CFRelease(list);
	return n;
}
*/
import "C"
import "fmt"

// Window is one entry from the CoreGraphics window list.
type Window struct {
	ID     uint32
	Name   string
	Owner  string
	X      int
	Y      int
	Width  int
	Height int
}

const maxWindows = 1024

// ListWindows returns the current on-screen windows in front-to-back
// z-order as reported by the window server. Name filtering is left to
// callers.
func ListWindows() ([]Window, error) {
	buf := make([]C.winshotWindowInfo, maxWindows)
	n := int(C.listWindows(&buf[0], C.int(maxWindows)))
	if n < 0 {
		return nil, fmt.Errorf("CGWindowListCopyWindowInfo returned no window list")
	}

	windows := make([]Window, 0, n)
	for i := 0; i < n; i++ {
		w := &buf[i]
		windows = append(windows, Window{
			ID:     uint32(w.id),
			Name:   C.GoString(&w.name[0]),
			Owner:  C.GoString(&w.owner[0]),
			X:      int(w.x),
			Y:      int(w.y),
			Width:  int(w.width),
			Height: int(w.height),
		})
	}
	return windows, nil
}
