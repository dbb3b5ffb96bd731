package keyboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"
)

// ErrSynthesisFailed is returned when posting an event failed. Success
// means "posted", not "received": the OS gives no delivery
// acknowledgment.
var ErrSynthesisFailed = errors.New("key synthesis failed")

// ErrInitFailed is returned when the one-time capability probe failed.
// The probe is retried on the next call.
var ErrInitFailed = errors.New("keyboard initialization failed")

// DefaultKeyDelay is the pause between a key-down and its key-up,
// giving the OS time to register the down state.
const DefaultKeyDelay = 10 * time.Millisecond

// DefaultCharDelay is the pause between characters when typing text.
const DefaultCharDelay = 100 * time.Millisecond

// Poster posts raw key events to the system input tap.
type Poster interface {
	PostKey(code uint16, down bool, mask uint64) error
	ProbeKey() error
}

// Synthesizer turns symbolic key names into timed key-down/key-up
// event pairs. Events target whatever window holds OS input focus.
// The only shared mutable state is the cached capability flag; a
// Synthesizer is safe for concurrent use.
type Synthesizer struct {
	poster   Poster
	keyDelay time.Duration

	mu    sync.Mutex
	ready bool
}

// NewSynthesizer creates a synthesizer over the given event poster.
// keyDelay <= 0 selects DefaultKeyDelay.
func NewSynthesizer(poster Poster, keyDelay time.Duration) *Synthesizer {
	if keyDelay <= 0 {
		keyDelay = DefaultKeyDelay
	}
	return &Synthesizer{poster: poster, keyDelay: keyDelay}
}

// ensureReady runs the capability probe once per process. Success is
// cached; failure is not, so a later call retries. The mutex means
// concurrent first calls run a single probe.
func (s *Synthesizer) ensureReady() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready {
		return nil
	}
	if err := s.poster.ProbeKey(); err != nil {
		return fmt.Errorf("%w: %v", ErrInitFailed, err)
	}
	s.ready = true
	return nil
}

// SendKey posts a key-down/key-up pair for the named key with the
// given modifiers held. The key name is case-insensitive; unknown keys
// return ErrUnknownKey with no event posted.
func (s *Synthesizer) SendKey(key string, modifiers []string) error {
	if err := s.ensureReady(); err != nil {
		return err
	}

	stroke, err := Resolve(key, modifiers)
	if err != nil {
		return err
	}

	if err := s.poster.PostKey(stroke.Code, true, stroke.Mask); err != nil {
		return fmt.Errorf("%w: key down: %v", ErrSynthesisFailed, err)
	}
	time.Sleep(s.keyDelay)
	if err := s.poster.PostKey(stroke.Code, false, stroke.Mask); err != nil {
		return fmt.Errorf("%w: key up: %v", ErrSynthesisFailed, err)
	}
	return nil
}

// TypeText sends text one character at a time, holding shift for
// uppercase letters, pausing delay between characters (not before the
// first or after the last). The first failing character aborts the
// call; characters already typed are not undone. ctx is checked
// between characters, the only safe cancellation point: a key-down
// always gets its key-up.
func (s *Synthesizer) TypeText(ctx context.Context, text string, delay time.Duration) error {
	if delay < 0 {
		delay = DefaultCharDelay
	}

	first := true
	for _, ch := range text {
		if !first {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		first = false

		var err error
		if unicode.IsUpper(ch) {
			err = s.SendKey(strings.ToLower(string(ch)), []string{"shift"})
		} else {
			err = s.SendKey(string(ch), nil)
		}
		if err != nil {
			return fmt.Errorf("typing %q: %w", ch, err)
		}
	}
	return nil
}
