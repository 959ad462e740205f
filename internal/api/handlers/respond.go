package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/anny12sstr/converter-analyses/internal/common"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

// writeError is the request boundary for the error taxonomy: every error
// becomes a JSON body with the mapped status, nothing propagates unhandled.
func writeError(w http.ResponseWriter, err error) {
	var ae *common.AppError
	if errors.As(err, &ae) {
		if ae.HTTPStatus() >= http.StatusInternalServerError {
			log.Printf("request failed: %v", err)
		}
		writeJSON(w, ae.HTTPStatus(), map[string]string{"error": ae.Message})
		return
	}

	log.Printf("unclassified error: %v", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

// MethodNotAllowed keeps the 405 body in the same JSON shape as every other
// error response.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method Not Allowed"})
}
