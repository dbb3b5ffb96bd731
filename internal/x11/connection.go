//go:build linux

package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgb/xtest"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
)

// Connection manages the X11 connection and core X resources.
type Connection struct {
	XUtil    *xgbutil.XUtil
	Root     xproto.Window
	hasXTest bool
}

// NewConnection establishes a connection to the X11 server and
// initializes required extensions.
func NewConnection() (*Connection, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, err
	}

	// Initialize keybind module (required for keysym -> keycode lookup).
	keybind.Initialize(xu)

	// XTEST is required for input synthesis; window listing and capture
	// work without it, so a missing extension is recorded rather than
	// treated as fatal.
	hasXTest := xtest.Init(xu.Conn()) == nil

	return &Connection{
		XUtil:    xu,
		Root:     xu.RootWin(),
		hasXTest: hasXTest,
	}, nil
}

// Close cleanly disconnects from the X11 server.
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}

func (c *Connection) requireXTest() error {
	if !c.hasXTest {
		return fmt.Errorf("XTEST extension is not available on this display")
	}
	return nil
}
