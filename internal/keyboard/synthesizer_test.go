package keyboard

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type recordedEvent struct {
	code uint16
	down bool
	mask uint64
}

type fakePoster struct {
	mu       sync.Mutex
	events   []recordedEvent
	postErr  error
	probeErr error
	probes   int32
}

func (f *fakePoster) PostKey(code uint16, down bool, mask uint64) error {
	if f.postErr != nil {
		return f.postErr
	}
	f.mu.Lock()
	f.events = append(f.events, recordedEvent{code, down, mask})
	f.mu.Unlock()
	return nil
}

func (f *fakePoster) ProbeKey() error {
	atomic.AddInt32(&f.probes, 1)
	return f.probeErr
}

func (f *fakePoster) recorded() []recordedEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedEvent(nil), f.events...)
}

func TestSendKeyPostsDownUpPair(t *testing.T) {
	poster := &fakePoster{}
	s := NewSynthesizer(poster, time.Millisecond)

	if err := s.SendKey("a", []string{"command"}); err != nil {
		t.Fatalf("SendKey error: %v", err)
	}

	events := poster.recorded()
	if len(events) != 2 {
		t.Fatalf("posted %d events, want 2", len(events))
	}
	if !events[0].down || events[1].down {
		t.Errorf("event order = (%v,%v), want (down,up)", events[0].down, events[1].down)
	}
	for i, ev := range events {
		if ev.code != 0x00 {
			t.Errorf("event %d code = %#x, want 0x00", i, ev.code)
		}
		if ev.mask != MaskCommand {
			t.Errorf("event %d mask = %#x, want MaskCommand", i, ev.mask)
		}
	}
}

func TestSendKeyUnknownKeyPostsNothing(t *testing.T) {
	poster := &fakePoster{}
	s := NewSynthesizer(poster, time.Millisecond)

	err := s.SendKey("no_such_key", nil)
	if !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("error = %v, want ErrUnknownKey", err)
	}
	if got := len(poster.recorded()); got != 0 {
		t.Errorf("posted %d events for unknown key, want 0", got)
	}
}

func TestSendKeyPostFailure(t *testing.T) {
	poster := &fakePoster{postErr: errors.New("event tap rejected")}
	s := NewSynthesizer(poster, time.Millisecond)

	err := s.SendKey("a", nil)
	if !errors.Is(err, ErrSynthesisFailed) {
		t.Fatalf("error = %v, want ErrSynthesisFailed", err)
	}
}

func TestProbeRunsOncePerProcess(t *testing.T) {
	poster := &fakePoster{}
	s := NewSynthesizer(poster, time.Millisecond)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.SendKey("a", nil); err != nil {
				t.Errorf("SendKey error: %v", err)
			}
		}()
	}
	wg.Wait()

	if n := atomic.LoadInt32(&poster.probes); n != 1 {
		t.Errorf("probe ran %d times, want 1", n)
	}
}

func TestProbeFailureRetried(t *testing.T) {
	poster := &fakePoster{probeErr: errors.New("no permission")}
	s := NewSynthesizer(poster, time.Millisecond)

	if err := s.SendKey("a", nil); !errors.Is(err, ErrInitFailed) {
		t.Fatalf("first error = %v, want ErrInitFailed", err)
	}
	if got := len(poster.recorded()); got != 0 {
		t.Fatalf("posted %d events with failed init, want 0", got)
	}

	// The failure is not cached: once the probe succeeds the key goes
	// through.
	poster.probeErr = nil
	if err := s.SendKey("a", nil); err != nil {
		t.Fatalf("second SendKey error: %v", err)
	}
	if n := atomic.LoadInt32(&poster.probes); n != 2 {
		t.Errorf("probe ran %d times, want 2", n)
	}
}

func TestTypeTextUppercaseUsesShift(t *testing.T) {
	poster := &fakePoster{}
	s := NewSynthesizer(poster, time.Millisecond)

	if err := s.TypeText(context.Background(), "Hi", 0); err != nil {
		t.Fatalf("TypeText error: %v", err)
	}

	events := poster.recorded()
	if len(events) != 4 {
		t.Fatalf("posted %d events, want 4", len(events))
	}

	// 'H' is shift+h, 'i' is plain.
	hCode := keyCodes["h"]
	if events[0].code != hCode || events[0].mask != MaskShift {
		t.Errorf("first event = %+v, want code %#x with MaskShift", events[0], hCode)
	}
	if events[2].code != keyCodes["i"] || events[2].mask != 0 {
		t.Errorf("third event = %+v, want code %#x with no mask", events[2], keyCodes["i"])
	}
}

func TestTypeTextDelayOnlyBetweenCharacters(t *testing.T) {
	poster := &fakePoster{}
	s := NewSynthesizer(poster, 0)

	delay := 30 * time.Millisecond
	start := time.Now()
	if err := s.TypeText(context.Background(), "abc", delay); err != nil {
		t.Fatalf("TypeText error: %v", err)
	}
	elapsed := time.Since(start)

	// Two gaps for three characters; no pause before the first or
	// after the last.
	if elapsed < 2*delay {
		t.Errorf("elapsed %v, want at least %v", elapsed, 2*delay)
	}
	if elapsed > 4*delay {
		t.Errorf("elapsed %v, want well under %v", elapsed, 4*delay)
	}
}

func TestTypeTextStopsAtFirstFailure(t *testing.T) {
	poster := &fakePoster{}
	s := NewSynthesizer(poster, time.Millisecond)

	err := s.TypeText(context.Background(), "a☃b", 0)
	if !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("error = %v, want ErrUnknownKey", err)
	}

	// The prefix before the failing character was typed and stays.
	events := poster.recorded()
	if len(events) != 2 {
		t.Fatalf("posted %d events, want 2 (the leading 'a' only)", len(events))
	}
	if events[0].code != keyCodes["a"] {
		t.Errorf("typed code %#x, want %#x", events[0].code, keyCodes["a"])
	}
}

func TestTypeTextCancellation(t *testing.T) {
	poster := &fakePoster{}
	s := NewSynthesizer(poster, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.TypeText(ctx, "ab", time.Hour)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}

	// The first character went out before the cancellation point; its
	// key-up was not cut off.
	events := poster.recorded()
	if len(events) != 2 {
		t.Fatalf("posted %d events, want 2", len(events))
	}
	if !events[0].down || events[1].down {
		t.Errorf("event order = (%v,%v), want (down,up)", events[0].down, events[1].down)
	}
}
