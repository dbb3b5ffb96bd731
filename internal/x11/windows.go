//go:build linux

package x11

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
)

// Rect describes a window's footprint in root-window coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Window is one entry from the window server's client list.
type Window struct {
	ID     uint32
	Name   string
	Owner  string
	Bounds Rect
}

// ListWindows returns the current on-screen windows in front-to-back
// z-order. Minimized (hidden) windows and windows on other virtual
// desktops are excluded, matching what a compositor reports as on
// screen. Name filtering is left to callers.
func (c *Connection) ListWindows() ([]Window, error) {
	// _NET_CLIENT_LIST_STACKING is bottom-to-top; reverse for
	// front-to-back.
	clients, err := ewmh.ClientListStackingGet(c.XUtil)
	if err != nil {
		// Some window managers only maintain _NET_CLIENT_LIST.
		clients, err = ewmh.ClientListGet(c.XUtil)
		if err != nil {
			return nil, fmt.Errorf("failed to get client list: %w", err)
		}
	}

	// Window managers without desktop support report desktop 0 for
	// everything, which keeps the filter a no-op.
	activeDesktop, desktopErr := c.currentDesktop()

	windows := make([]Window, 0, len(clients))
	for i := len(clients) - 1; i >= 0; i-- {
		windowID := clients[i]
		if c.isHidden(windowID) {
			continue
		}
		if desktopErr == nil {
			if d, err := c.windowDesktop(windowID); err == nil && d != stickyDesktop && d != activeDesktop {
				continue
			}
		}
		rect, ok := c.windowRect(windowID)
		if !ok {
			continue
		}
		windows = append(windows, Window{
			ID:     uint32(windowID),
			Name:   c.windowTitle(windowID),
			Owner:  c.windowOwner(windowID),
			Bounds: rect,
		})
	}
	return windows, nil
}

func (c *Connection) isHidden(windowID xproto.Window) bool {
	states, err := ewmh.WmStateGet(c.XUtil, windowID)
	if err != nil {
		return false
	}
	for _, state := range states {
		if state == "_NET_WM_STATE_HIDDEN" {
			return true
		}
	}
	return false
}

func (c *Connection) windowRect(windowID xproto.Window) (Rect, bool) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(windowID)).Reply()
	if err != nil {
		return Rect{}, false
	}

	translate, err := xproto.TranslateCoordinates(
		c.XUtil.Conn(),
		windowID,
		c.Root,
		0, 0,
	).Reply()
	if err != nil {
		return Rect{}, false
	}

	return Rect{
		X:      int(translate.DstX),
		Y:      int(translate.DstY),
		Width:  int(geom.Width),
		Height: int(geom.Height),
	}, true
}

// windowOwner returns the owning application name via WM_CLASS.
func (c *Connection) windowOwner(windowID xproto.Window) string {
	wmClass, err := icccm.WmClassGet(c.XUtil, windowID)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(wmClass.Class)
}

func (c *Connection) windowTitle(windowID xproto.Window) string {
	title, err := ewmh.WmNameGet(c.XUtil, windowID)
	if err == nil {
		title = strings.TrimSpace(title)
		if title != "" {
			return title
		}
	}

	title, err = icccm.WmNameGet(c.XUtil, windowID)
	if err == nil {
		title = strings.TrimSpace(title)
		if title != "" {
			return title
		}
	}

	return ""
}
