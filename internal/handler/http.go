package handler

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the intake pipeline for the local server mode.
// Method dispatch stays inside Handle, so every method is routed to it.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.HandleFunc("/submissions", h.ServeHTTP)
}

// ServeHTTP adapts a net/http request into the invocation event shape and
// writes the resulting response back out.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusInternalServerError)
		return
	}

	ev := Event{
		HTTPMethod: r.Method,
		Headers:    make(map[string]string, len(r.Header)),
		Body:       string(body),
	}
	for k := range r.Header {
		ev.Headers[k] = r.Header.Get(k)
	}

	resp, _ := h.Handle(r.Context(), ev)
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	_, _ = w.Write([]byte(resp.Body))
}
