//go:build !linux && !darwin

package platform

import "errors"

// ErrUnsupported is returned on platforms without a native backend.
var ErrUnsupported = errors.New("no window-server backend for this platform")

// New reports that no backend exists for this platform.
func New() (Backend, error) {
	return nil, ErrUnsupported
}
