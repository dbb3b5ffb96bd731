//go:build linux

package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgb/xtest"
	"github.com/BurntSushi/xgbutil/keybind"
)

// Modifier bits follow the canonical CoreGraphics event-flag layout used
// throughout the key synthesis path (see the keyboard package).
const (
	maskShift   uint64 = 1 << 17
	maskControl uint64 = 1 << 18
	maskOption  uint64 = 1 << 19
	maskCommand uint64 = 1 << 20
)

// modifier press order for key-down; released in reverse on key-up.
var maskKeysyms = []struct {
	bit    uint64
	keysym string
}{
	{maskCommand, "Super_L"},
	{maskShift, "Shift_L"},
	{maskControl, "Control_L"},
	{maskOption, "Alt_L"},
}

// keysyms maps canonical virtual key codes to X11 keysym names.
var keysyms = map[uint16]string{
	0x00: "a", 0x0B: "b", 0x08: "c", 0x02: "d", 0x0E: "e",
	0x03: "f", 0x05: "g", 0x04: "h", 0x22: "i", 0x26: "j",
	0x28: "k", 0x25: "l", 0x2E: "m", 0x2D: "n", 0x1F: "o",
	0x23: "p", 0x0C: "q", 0x0F: "r", 0x01: "s", 0x11: "t",
	0x20: "u", 0x09: "v", 0x0D: "w", 0x07: "x", 0x10: "y",
	0x06: "z",

	0x12: "1", 0x13: "2", 0x14: "3", 0x15: "4", 0x17: "5",
	0x16: "6", 0x1A: "7", 0x1C: "8", 0x19: "9", 0x1D: "0",

	0x24: "Return", 0x30: "Tab", 0x31: "space", 0x33: "BackSpace",
	0x35: "Escape", 0x39: "Caps_Lock", 0x75: "Delete",

	0x37: "Super_L", 0x38: "Shift_L", 0x3A: "Alt_L", 0x3B: "Control_L",
	0x36: "Super_R", 0x3C: "Shift_R", 0x3D: "Alt_R", 0x3E: "Control_R",

	0x7B: "Left", 0x7C: "Right", 0x7D: "Down", 0x7E: "Up",

	0x74: "Page_Up", 0x79: "Page_Down", 0x73: "Home", 0x77: "End",
	0x72: "Insert",

	0x29: "semicolon", 0x18: "equal", 0x2B: "comma", 0x1B: "minus",
	0x2F: "period", 0x2C: "slash", 0x32: "grave", 0x21: "bracketleft",
	0x2A: "backslash", 0x1E: "bracketright", 0x27: "apostrophe",

	0x7A: "F1", 0x78: "F2", 0x63: "F3", 0x76: "F4", 0x60: "F5",
	0x61: "F6", 0x62: "F7", 0x64: "F8", 0x65: "F9", 0x6D: "F10",
	0x67: "F11", 0x6F: "F12",
}

// PostKey injects one synthetic key event via the XTEST extension.
// XTEST carries no modifier state, so modifier keycodes are pressed
// around the target key: before it on key-down, after it on key-up.
func (c *Connection) PostKey(code uint16, down bool, mask uint64) error {
	if err := c.requireXTest(); err != nil {
		return err
	}

	keycode, err := c.keycodeFor(code)
	if err != nil {
		return err
	}

	if down {
		for _, m := range maskKeysyms {
			if mask&m.bit == 0 {
				continue
			}
			mod, err := c.keysymKeycode(m.keysym)
			if err != nil {
				return err
			}
			if err := c.fakeKey(mod, true); err != nil {
				return err
			}
		}
		return c.fakeKey(keycode, true)
	}

	if err := c.fakeKey(keycode, false); err != nil {
		return err
	}
	for i := len(maskKeysyms) - 1; i >= 0; i-- {
		m := maskKeysyms[i]
		if mask&m.bit == 0 {
			continue
		}
		mod, err := c.keysymKeycode(m.keysym)
		if err != nil {
			return err
		}
		if err := c.fakeKey(mod, false); err != nil {
			return err
		}
	}
	return nil
}

// ProbeKey verifies that key synthesis is possible on this display
// without injecting anything: XTEST must be present and a plain letter
// key must resolve to a keycode in the current keyboard mapping.
func (c *Connection) ProbeKey() error {
	if err := c.requireXTest(); err != nil {
		return err
	}
	if _, err := c.keysymKeycode("a"); err != nil {
		return err
	}
	return nil
}

func (c *Connection) keycodeFor(code uint16) (xproto.Keycode, error) {
	name, ok := keysyms[code]
	if !ok {
		return 0, fmt.Errorf("no keysym mapping for key code %#02x", code)
	}
	return c.keysymKeycode(name)
}

func (c *Connection) keysymKeycode(name string) (xproto.Keycode, error) {
	codes := keybind.StrToKeycodes(c.XUtil, name)
	if len(codes) == 0 {
		return 0, fmt.Errorf("keysym %q has no keycode in the current mapping", name)
	}
	return codes[0], nil
}

func (c *Connection) fakeKey(keycode xproto.Keycode, down bool) error {
	typ := byte(xproto.KeyPress)
	if !down {
		typ = byte(xproto.KeyRelease)
	}
	err := xtest.FakeInputChecked(
		c.XUtil.Conn(),
		typ,
		byte(keycode),
		xproto.TimeCurrentTime,
		c.Root,
		0, 0, 0,
	).Check()
	if err != nil {
		return fmt.Errorf("XTEST FakeInput failed: %w", err)
	}
	return nil
}
