package response

import (
	"encoding/json"
	"net/http"
)

// JSON encodes data as the response body with the given status code. A nil
// data writes headers only.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// NoContent replies 204 with an empty body, used to finish CORS preflight.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
