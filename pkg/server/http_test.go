package server

import (
	"context"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sarkarshuvojit/ecg-playback/pkg/hub"
	"github.com/sarkarshuvojit/ecg-playback/pkg/render"
)

func TestHTTP_Window(t *testing.T) {
	h := hub.New()
	h.Publish(context.Background(), sampleFrame(3))
	handler := NewHTTPHandler(streamingMonitor(t), h)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/window", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	var f render.Frame
	if err := json.NewDecoder(rec.Body).Decode(&f); err != nil {
		t.Fatalf("decoding frame: %v", err)
	}
	if f.Cursor != 3 || f.Len() != 2 {
		t.Errorf("unexpected frame: cursor=%d len=%d", f.Cursor, f.Len())
	}
	if f.Options.Scales.Y.Title != "Amplitude" {
		t.Errorf("y axis title = %q", f.Options.Scales.Y.Title)
	}
}

func TestHTTP_WindowWhileLoading(t *testing.T) {
	handler := NewHTTPHandler(loadingMonitor(t), hub.New())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/window", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestHTTP_WindowAfterFailedLoad(t *testing.T) {
	handler := NewHTTPHandler(failedMonitor(t), hub.New())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/window", nil))

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
}

func TestHTTP_ChartPNG(t *testing.T) {
	h := hub.New()
	h.Publish(context.Background(), sampleFrame(1))
	handler := NewHTTPHandler(streamingMonitor(t), h)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/chart.png", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type = %s", ct)
	}
	if _, err := png.Decode(rec.Body); err != nil {
		t.Errorf("body is not a png: %v", err)
	}
}

func TestHTTP_Healthz(t *testing.T) {
	m := loadingMonitor(t)
	handler := NewHTTPHandler(m, hub.New())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["state"] != "loading" {
		t.Errorf("state = %v", body["state"])
	}
	if body["id"] != m.ID().String() {
		t.Errorf("id = %v", body["id"])
	}
}

func TestHTTP_MethodNotAllowed(t *testing.T) {
	handler := NewHTTPHandler(loadingMonitor(t), hub.New())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/window", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}
