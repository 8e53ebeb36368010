package api

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strings"
)

const eventStreamMediaType = "text/event-stream"

// eventWriter writes Server-Sent Events, flushing after every event
type eventWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// newEventWriter prepares w for an event stream and commits the 200 status.
// It returns false when w cannot flush, in which case nothing was written.
func newEventWriter(w http.ResponseWriter) (*eventWriter, bool) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, false
	}

	h := w.Header()
	h.Set("Content-Type", eventStreamMediaType)
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	return &eventWriter{w: w, flusher: flusher}, true
}

// WriteJSON sends v, JSON encoded, as the data of one event
func (e *eventWriter) WriteJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	if _, err := fmt.Fprintf(e.w, "data:%s\n\n", data); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}
	e.flusher.Flush()
	return nil
}

// acceptsEventStream reports whether an Accept header admits text/event-stream.
// A missing header accepts anything.
func acceptsEventStream(accept string) bool {
	if strings.TrimSpace(accept) == "" {
		return true
	}
	for _, part := range strings.Split(accept, ",") {
		mediaType, params, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		if q, ok := params["q"]; ok && strings.TrimSpace(q) == "0" {
			continue
		}
		switch mediaType {
		case eventStreamMediaType, "text/*", "*/*":
			return true
		}
	}
	return false
}
