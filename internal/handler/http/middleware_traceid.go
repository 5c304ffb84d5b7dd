package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader carries the request correlation ID. Clients may supply their
// own value; otherwise the server mints one.
const traceIDHeader = "X-Trace-ID"

// withTraceID attaches a trace ID to every request: it reuses the incoming
// X-Trace-ID header when present, generates a UUID otherwise, binds the ID
// to a child logger stored in the request context, and echoes it back in the
// response header so clients can correlate log entries with their calls.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		log := h.logger.GetChildLogger()
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(log.WithContext(r.Context())))
	})
}
