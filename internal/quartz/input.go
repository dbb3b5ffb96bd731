//go:build darwin

package quartz

/*
#include <CoreGraphics/CoreGraphics.h>

// postKey creates and posts one keyboard event to the HID event tap.
// Returns 0 on success, 1 if the event could not be created.
static int postKey(uint16_t keyCode, bool down, uint64_t flags) {
	CGEventRef event = CGEventCreateKeyboardEvent(NULL, (CGKeyCode)keyCode, down);
	if (event == NULL) {
		return 1;
	}
	if (flags != 0) {
		CGEventSetFlags(event, (CGEventFlags)flags);
	}
	CGEventPost(kCGHIDEventTap, event);
	CFRelease(event);
	return 0;
}

// probeKey creates a throwaway key-down event without posting it.
static int probeKey(void) {
	CGEventRef event = CGEventCreateKeyboardEvent(NULL, (CGKeyCode)0x00, true);
	if (event == NULL) {
		return 1;
	}
	CFRelease(event);
	return 0;
}
*/
import "C"
import "fmt"

// PostKey injects one hardware-level key event at the HID event tap.
// The mask is passed through unchanged: the canonical modifier bits are
// CGEventFlags values.
func PostKey(code uint16, down bool, mask uint64) error {
	if C.postKey(C.uint16_t(code), C.bool(down), C.uint64_t(mask)) != 0 {
		return fmt.Errorf("failed to create keyboard event for key code %#02x", code)
	}
	return nil
}

// ProbeKey checks that keyboard events can be constructed, without
// posting anything. Fails when the process lacks input permissions.
func ProbeKey() error {
	if C.probeKey() != 0 {
		return fmt.Errorf("failed to create test keyboard event")
	}
	return nil
}
