package taskman

import "encoding/json"

// User-facing fallback messages.
const (
	msgUnexpected = "An unexpected error occurred"
	msgNetwork    = "Network error. Please check your connection."
)

// StatusError carries the HTTP status of a failed call together with a
// human-readable message. Code 0 means the transport itself failed before
// any status was received.
type StatusError struct {
	Code    int
	Message string
	Err     error
}

func (e *StatusError) Error() string {
	return e.Message
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

func networkError(err error) *StatusError {
	return &StatusError{Message: msgNetwork, Err: err}
}

// statusError picks the message for a non-2xx response: a server-provided
// message body wins, then the per-service table, then the generic fallback.
func statusError(code int, body []byte, messages map[int]string) *StatusError {
	payload := struct {
		Message string `json:"message"`
	}{}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return &StatusError{Code: code, Message: payload.Message}
	}
	if message, ok := messages[code]; ok {
		return &StatusError{Code: code, Message: message}
	}
	return &StatusError{Code: code, Message: msgUnexpected}
}
