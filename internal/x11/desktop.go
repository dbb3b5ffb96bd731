//go:build linux

package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

const stickyDesktop = -1

// currentDesktop returns the active virtual desktop (_NET_CURRENT_DESKTOP).
func (c *Connection) currentDesktop() (int, error) {
	desktop, err := ewmh.CurrentDesktopGet(c.XUtil)
	if err != nil {
		return 0, err
	}
	return int(desktop), nil
}

// windowDesktop returns the desktop a window lives on (_NET_WM_DESKTOP),
// or stickyDesktop for windows visible on all desktops.
func (c *Connection) windowDesktop(windowID xproto.Window) (int, error) {
	desktop, err := ewmh.WmDesktopGet(c.XUtil, windowID)
	if err != nil {
		return 0, err
	}
	if desktop == 0xFFFFFFFF {
		return stickyDesktop, nil
	}
	return int(desktop), nil
}
