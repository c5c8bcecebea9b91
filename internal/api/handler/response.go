package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/ecommerce-admin/internal/pkg/apperr"
	"github.com/rs/zerolog/log"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode response failed")
	}
}

// writeError 錯誤一律回純文字, 非 AppError 視為內部錯誤
func writeError(w http.ResponseWriter, err error) {
	if appErr, ok := apperr.As(err); ok {
		http.Error(w, appErr.Message, appErr.Status)
		return
	}
	http.Error(w, apperr.Internal(err).Message, http.StatusInternalServerError)
}
