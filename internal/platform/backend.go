package platform

// WindowID is a platform-neutral window identifier.
type WindowID uint32

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Window contains metadata and geometry for an on-screen window as
// reported by the window server.
type Window struct {
	ID     WindowID
	Name   string // window title; may be empty
	Owner  string // owning application name
	Bounds Rect
}

// RawImage is a raw pixel buffer returned by window rasterization.
// Pixels are in BGRA byte order. Stride is bytes per row and may exceed
// Width*4 due to alignment padding.
type RawImage struct {
	Pix          []byte
	Width        int
	Height       int
	Stride       int
	BitsPerPixel int
}

// Backend abstracts window-server and input-injection operations across
// platforms.
type Backend interface {
	// ListWindows returns all on-screen windows in front-to-back z-order.
	// Windows without a name are included; callers filter.
	ListWindows() ([]Window, error)

	// CaptureWindow rasterizes a single window's visible content,
	// excluding overlapping windows in front of it. bounds is the
	// window's current footprint from a fresh ListWindows call.
	CaptureWindow(id WindowID, bounds Rect) (*RawImage, error)

	// PostKey injects one hardware-level key event at the system input
	// tap. code is a virtual key code in the canonical (CoreGraphics)
	// key code space; mask is a modifier bitfield (see keyboard package).
	PostKey(code uint16, down bool, mask uint64) error

	// ProbeKey verifies that key events can be constructed without
	// posting anything. Used as a one-time capability check.
	ProbeKey() error

	// Close releases any window-server connection held by the backend.
	Close() error
}
