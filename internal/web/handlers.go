package web

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"pulse/internal/deeplink"
	"pulse/internal/initdata"
	"pulse/internal/metrics"
)

type validateRequest struct {
	InitData string `json:"initData"`
}

type validateResponse struct {
	OK      bool           `json:"ok"`
	Data    *initdata.Data `json:"data,omitempty"`
	Warning string         `json:"warning,omitempty"`
	Reason  string         `json:"reason,omitempty"`
}

type contextResponse struct {
	OK      bool             `json:"ok"`
	Context deeplink.Context `json:"context"`
}

// POST /api/validate-init {"initData": "..."}
func (s *Server) handleValidateInit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.MaxBodyBytes))
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			http.Error(w, "payload too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "bad body", http.StatusBadRequest)
		return
	}
	var req validateRequest
	// Malformed JSON is treated like an absent initData.
	_ = json.Unmarshal(body, &req)

	data, err := s.verify(r, req.InitData)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, validateResponse{OK: false, Reason: initdata.Reason(err)})
		return
	}
	writeJSON(w, http.StatusOK, validateResponse{OK: true, Data: &data})
}

// GET /api/health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// GET /api/context -> deep link context of the verified start_param
func (s *Server) handleContext(w http.ResponseWriter, r *http.Request) {
	data, _ := launchData(r.Context())
	writeJSON(w, http.StatusOK, contextResponse{OK: true, Context: deeplink.Parse(data.StartParamValue())})
}

func (s *Server) verify(r *http.Request, raw string) (initdata.Data, error) {
	start := time.Now()
	data, err := s.verifier.Verify(raw)
	metrics.VerifyLatency.Observe(time.Since(start).Seconds())

	result := "ok"
	if err != nil {
		result = initdata.Reason(err)
	}
	metrics.Verifications.WithLabelValues(result).Inc()
	log.Info().
		Str("request_id", requestID(r.Context())).
		Str("path", r.URL.Path).
		Str("result", result).
		Msg("web: initData checked")
	return data, err
}
