package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
)

// respondJSON encodes into a buffer first so a failed encode never writes a
// 200 header before the error.
func respondJSON(w http.ResponseWriter, logger *slog.Logger, payload any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		logger.Warn("failed to write response", slog.Any("error", err))
	}
}
