package capture

import (
	"fmt"

	"github.com/kbinani/screenshot"

	"github.com/1broseidon/winshot/internal/window"
)

// CaptureDisplay captures a full display by index and encodes it as
// PNG. Display 0 is the main display. An out-of-range index maps to
// window.ErrNotFound so callers see the same taxonomy as window
// capture.
func (p *Pipeline) CaptureDisplay(index int, opts Options) ([]byte, error) {
	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return nil, fmt.Errorf("%w: no active displays", ErrCaptureFailed)
	}
	if index < 0 || index >= n {
		return nil, fmt.Errorf("display %d of %d: %w", index, n, window.ErrNotFound)
	}

	bounds := screenshot.GetDisplayBounds(index)
	img, err := screenshot.CaptureRect(bounds)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCaptureFailed, err)
	}

	return encodePNG(scaleDown(img, opts))
}
