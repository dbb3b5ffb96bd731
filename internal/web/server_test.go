package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/1broseidon/winshot/internal/config"
	"github.com/1broseidon/winshot/internal/mcp"
	"github.com/1broseidon/winshot/internal/platform"
)

type fakeBackend struct {
	windows []platform.Window
	listErr error
}

func (f *fakeBackend) ListWindows() ([]platform.Window, error) { return f.windows, f.listErr }

func (f *fakeBackend) CaptureWindow(id platform.WindowID, bounds platform.Rect) (*platform.RawImage, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBackend) PostKey(code uint16, down bool, mask uint64) error { return nil }
func (f *fakeBackend) ProbeKey() error                                   { return nil }
func (f *fakeBackend) Close() error                                      { return nil }

func newTestHandler(t *testing.T, backend platform.Backend) (http.Handler, *mcp.Server) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Screenshots.Dir = t.TempDir()
	server, err := mcp.NewServer(cfg, backend)
	if err != nil {
		t.Fatalf("mcp.NewServer error: %v", err)
	}
	t.Cleanup(func() { server.Close() })
	return NewServer("127.0.0.1:0", server).Handler(), server
}

func TestHealthHealthy(t *testing.T) {
	handler, _ := newTestHandler(t, &fakeBackend{
		windows: []platform.Window{
			{ID: 1, Name: "One", Owner: "App"},
			{ID: 2, Name: "Two", Owner: "App"},
		},
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Status  string `json:"status"`
		Windows int    `json:"windows"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Status != "healthy" || body.Windows != 2 {
		t.Errorf("body = %+v, want healthy/2", body)
	}
}

func TestHealthReportsBackendFailure(t *testing.T) {
	handler, _ := newTestHandler(t, &fakeBackend{listErr: errors.New("display gone")})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestHealthRejectsNonGET(t *testing.T) {
	handler, _ := newTestHandler(t, &fakeBackend{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/health", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestScreenshotsServedStatically(t *testing.T) {
	handler, server := newTestHandler(t, &fakeBackend{})

	name := "20250101_120000_cafebabe.png"
	if err := os.WriteFile(filepath.Join(server.Store().Dir(), name), []byte("png bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/screenshots/"+name, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "png bytes" {
		t.Errorf("body = %q, want file content", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/screenshots/missing.png", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status for missing file = %d, want 404", rec.Code)
	}
}
