package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	traceIDHeader        = "X-Trace-ID"
	idempotencyKeyHeader = "Idempotency-Key"
)

// withTraceID puts a child logger carrying trace_id (and idempotency_key when
// the client sent one) into the request context. A missing X-Trace-ID is
// generated and echoed back.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}
		idempotencyKey := r.Header.Get(idempotencyKeyHeader)

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			c = c.Str("trace_id", traceID)
			if idempotencyKey != "" {
				c = c.Str("idempotency_key", idempotencyKey)
			}
			return c
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
