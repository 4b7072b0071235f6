package httputil

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform wrapper every API operation returns: success
// with the operation's result, or failure with a human-readable message.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RespondData writes a success envelope carrying data. It marshals before
// writing headers so an encoding failure never produces a partial
// response.
func RespondData(w http.ResponseWriter, status int, data any) {
	respond(w, status, Envelope{Success: true, Data: data})
}

// RespondSuccess writes a bare success envelope (used by delete, which
// has no result body).
func RespondSuccess(w http.ResponseWriter, status int) {
	respond(w, status, Envelope{Success: true})
}

// RespondError writes a failure envelope with the given message.
func RespondError(w http.ResponseWriter, status int, message string) {
	respond(w, status, Envelope{Success: false, Error: message})
}

func respond(w http.ResponseWriter, status int, env Envelope) {
	payload, err := json.Marshal(env)
	if err != nil {
		// Fallback to plain text if encoding fails
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal server error"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}
