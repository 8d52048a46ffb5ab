package web

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"pulse/internal/initdata"
	"pulse/internal/metrics"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	launchDataKey
)

const (
	headerRequestID = "X-Request-Id"
	headerInitData  = "X-Init-Data"
)

// authMiddleware verifies initData from the X-Init-Data header or the
// initData query parameter and stores the decoded fields in the request context.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(headerInitData)
		if raw == "" {
			raw = r.URL.Query().Get("initData")
		}
		if int64(len(raw)) > s.MaxBodyBytes {
			http.Error(w, "payload too large", http.StatusRequestEntityTooLarge)
			return
		}
		data, err := s.verify(r, raw)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, validateResponse{OK: false, Reason: initdata.Reason(err)})
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), launchDataKey, data)))
	})
}

func launchData(ctx context.Context) (initdata.Data, bool) {
	d, ok := ctx.Value(launchDataKey).(initdata.Data)
	return d, ok
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		w.Header().Set(headerRequestID, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, "+headerInitData+", "+headerRequestID)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

var knownPaths = map[string]bool{
	"/api/validate-init": true,
	"/api/health":        true,
	"/api/context":       true,
	"/metrics":           true,
}

func withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(rec, r)
		path := r.URL.Path
		if !knownPaths[path] {
			path = "other"
		}
		metrics.HTTPRequests.WithLabelValues(path, strconv.Itoa(rec.code)).Inc()
	})
}
