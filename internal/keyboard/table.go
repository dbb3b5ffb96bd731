// Package keyboard synthesizes hardware-level key events from symbolic
// key names.
package keyboard

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownKey is returned for a key name outside the symbol table.
// No event is posted.
var ErrUnknownKey = errors.New("unknown key")

// Modifier masks in the canonical CoreGraphics event-flag layout. The
// darwin backend passes these through unchanged; other backends
// translate.
const (
	MaskShift   uint64 = 1 << 17
	MaskControl uint64 = 1 << 18
	MaskOption  uint64 = 1 << 19
	MaskCommand uint64 = 1 << 20
)

// Stroke is a resolved key: hardware key code plus modifier bitfield.
type Stroke struct {
	Code uint16
	Mask uint64
}

// keyCodes maps lowercase key names to virtual key codes (CoreGraphics
// key code space, the canonical space for all backends).
var keyCodes = map[string]uint16{
	"a": 0x00, "b": 0x0B, "c": 0x08, "d": 0x02, "e": 0x0E,
	"f": 0x03, "g": 0x05, "h": 0x04, "i": 0x22, "j": 0x26,
	"k": 0x28, "l": 0x25, "m": 0x2E, "n": 0x2D, "o": 0x1F,
	"p": 0x23, "q": 0x0C, "r": 0x0F, "s": 0x01, "t": 0x11,
	"u": 0x20, "v": 0x09, "w": 0x0D, "x": 0x07, "y": 0x10,
	"z": 0x06,

	"1": 0x12, "2": 0x13, "3": 0x14, "4": 0x15, "5": 0x17,
	"6": 0x16, "7": 0x1A, "8": 0x1C, "9": 0x19, "0": 0x1D,

	"return": 0x24, "tab": 0x30, "space": 0x31, "delete": 0x33,
	"escape": 0x35, "capslock": 0x39, "forward_delete": 0x75,

	"command": 0x37, "shift": 0x38, "option": 0x3A, "control": 0x3B,
	"right_command": 0x36, "right_shift": 0x3C, "right_option": 0x3D,
	"right_control": 0x3E,

	"left_arrow": 0x7B, "right_arrow": 0x7C, "down_arrow": 0x7D,
	"up_arrow": 0x7E,

	"page_up": 0x74, "page_down": 0x79, "home": 0x73, "end": 0x77,
	"help": 0x72,

	";": 0x29, "=": 0x18, ",": 0x2B, "-": 0x1B, ".": 0x2F,
	"/": 0x2C, "`": 0x32, "[": 0x21, "\\": 0x2A, "]": 0x1E,
	"'": 0x27,

	"f1": 0x7A, "f2": 0x78, "f3": 0x63, "f4": 0x76, "f5": 0x60,
	"f6": 0x61, "f7": 0x62, "f8": 0x64, "f9": 0x65, "f10": 0x6D,
	"f11": 0x67, "f12": 0x6F,
}

// modifierMasks maps lowercase modifier names to mask bits.
var modifierMasks = map[string]uint64{
	"command": MaskCommand,
	"shift":   MaskShift,
	"control": MaskControl,
	"option":  MaskOption,
}

// Resolve looks up a key name and modifier set in the symbol tables.
// Key names are case-insensitive. Unrecognized modifier names are
// silently ignored.
func Resolve(key string, modifiers []string) (Stroke, error) {
	name := strings.ToLower(key)
	code, ok := keyCodes[name]
	if !ok {
		return Stroke{}, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}

	var mask uint64
	for _, mod := range modifiers {
		if bit, ok := modifierMasks[strings.ToLower(mod)]; ok {
			mask |= bit
		}
	}
	return Stroke{Code: code, Mask: mask}, nil
}

// KnownKeys returns the sorted symbol table names, for help output.
func KnownKeys() []string {
	names := make([]string, 0, len(keyCodes))
	for name := range keyCodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
