package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/sarkarshuvojit/ecg-playback/pkg/hub"
	"github.com/sarkarshuvojit/ecg-playback/pkg/monitor"
	"github.com/sarkarshuvojit/ecg-playback/pkg/render"
)

// NewHTTPHandler serves the current frame for chart views that poll instead
// of streaming over gRPC.
func NewHTTPHandler(m *monitor.Monitor, h *hub.Hub) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", healthHandler(m))
	mux.HandleFunc("GET /window", windowHandler(m, h))
	mux.HandleFunc("GET /chart.png", chartHandler(m, h))
	return mux
}

func healthHandler(m *monitor.Monitor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := m.Status()
		resp := map[string]interface{}{
			"id":           st.ID.String(),
			"state":        st.State,
			"seriesLength": st.SeriesLength,
			"windowSize":   st.WindowSize,
		}
		if st.Err != nil {
			resp["error"] = st.Err.Error()
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func windowHandler(m *monitor.Monitor, h *hub.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, ok := currentFrame(w, m, h)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, f)
	}
}

func chartHandler(m *monitor.Monitor, h *hub.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, ok := currentFrame(w, m, h)
		if !ok {
			return
		}

		var buf bytes.Buffer
		if err := render.WritePNG(&buf, f, render.DefaultWidth, render.DefaultHeight); err != nil {
			log.Printf("Failed to render chart at cursor %d: %v", f.Cursor, err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		w.Write(buf.Bytes())
	}
}

// currentFrame writes the error response itself when there is no frame to serve.
func currentFrame(w http.ResponseWriter, m *monitor.Monitor, h *hub.Hub) (render.Frame, bool) {
	if err := m.Ready(); err != nil {
		code := http.StatusServiceUnavailable
		if errors.Is(err, monitor.ErrLoadFailed) {
			code = http.StatusBadGateway
		}
		writeJSON(w, code, map[string]string{"error": err.Error()})
		return render.Frame{}, false
	}

	f, ok := h.Latest()
	if !ok {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "no window published yet"})
		return render.Frame{}, false
	}
	return f, true
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}
