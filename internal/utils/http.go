package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serialises data to JSON and writes it to the HTTP response with
// the given status code. Sets the "Content-Type" header to
// "application/json". If marshalling fails, it responds with 500 Internal
// Server Error and returns a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
