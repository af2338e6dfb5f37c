package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data as JSON and writes it to w with the given
// status code. Returns the number of bytes written and any write error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("error marshalling response body: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	n, err := w.Write(body)
	if err != nil {
		return n, fmt.Errorf("error writing response body: %w", err)
	}

	return n, nil
}
