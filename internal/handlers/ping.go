package handlers

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
)

// PingHandler handles GET /api/ping.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := fmt.Fprint(w, "ok"); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to write ping response")
	}
}
