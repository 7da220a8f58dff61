// Package common provides the JSON response writers shared by the BFF routes.
package common

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/stacklok/model-registry-bff/internal/models"
)

// WriteJSONResponse writes a JSON response with the given data
func WriteJSONResponse(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// WriteErrorResponse writes a standardized error envelope. The status code is
// repeated as the error code.
func WriteErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	WriteJSONResponse(w, models.ErrorEnvelope{
		Error: models.HTTPError{
			Code:    strconv.Itoa(statusCode),
			Message: message,
		},
	}, statusCode)
}
