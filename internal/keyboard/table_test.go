package keyboard

import (
	"errors"
	"testing"
)

func TestResolveCaseInsensitive(t *testing.T) {
	lower, err := Resolve("a", []string{"shift"})
	if err != nil {
		t.Fatalf("Resolve(a) error: %v", err)
	}
	upper, err := Resolve("A", []string{"SHIFT"})
	if err != nil {
		t.Fatalf("Resolve(A) error: %v", err)
	}
	if lower != upper {
		t.Errorf("Resolve(a, shift) = %+v, Resolve(A, SHIFT) = %+v, want equal", lower, upper)
	}
}

func TestResolveModifierMasks(t *testing.T) {
	tests := []struct {
		name      string
		modifiers []string
		wantMask  uint64
	}{
		{"none", nil, 0},
		{"shift", []string{"shift"}, MaskShift},
		{"command", []string{"command"}, MaskCommand},
		{"combination", []string{"command", "shift"}, MaskCommand | MaskShift},
		{"all four", []string{"command", "shift", "control", "option"},
			MaskCommand | MaskShift | MaskControl | MaskOption},
		{"unknown ignored", []string{"hyper", "shift"}, MaskShift},
		{"duplicate", []string{"shift", "shift"}, MaskShift},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stroke, err := Resolve("s", tt.modifiers)
			if err != nil {
				t.Fatalf("Resolve error: %v", err)
			}
			if stroke.Mask != tt.wantMask {
				t.Errorf("mask = %#x, want %#x", stroke.Mask, tt.wantMask)
			}
		})
	}
}

func TestResolveKeyCodes(t *testing.T) {
	tests := []struct {
		key  string
		code uint16
	}{
		{"a", 0x00},
		{"z", 0x06},
		{"0", 0x1D},
		{"return", 0x24},
		{"space", 0x31},
		{"escape", 0x35},
		{"up_arrow", 0x7E},
		{"f12", 0x6F},
		{"/", 0x2C},
	}
	for _, tt := range tests {
		stroke, err := Resolve(tt.key, nil)
		if err != nil {
			t.Errorf("Resolve(%q) error: %v", tt.key, err)
			continue
		}
		if stroke.Code != tt.code {
			t.Errorf("Resolve(%q).Code = %#x, want %#x", tt.key, stroke.Code, tt.code)
		}
	}
}

func TestResolveUnknownKey(t *testing.T) {
	_, err := Resolve("hyperspace", nil)
	if !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("Resolve error = %v, want ErrUnknownKey", err)
	}
}

func TestKnownKeysSortedAndComplete(t *testing.T) {
	names := KnownKeys()
	if len(names) != len(keyCodes) {
		t.Fatalf("KnownKeys returned %d names, table has %d", len(names), len(keyCodes))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("KnownKeys not sorted: %q before %q", names[i-1], names[i])
		}
	}
}
