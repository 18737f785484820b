package handlers

import (
	"encoding/json"
	"net/http"
)

// errorResponse is the stable error envelope: a snake_case reason code plus
// optional per-field detail (contact form only).
type errorResponse struct {
	Error  string      `json:"error"`
	Fields interface{} `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, errorResponse{Error: code})
}
