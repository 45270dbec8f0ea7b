package monitor

import (
	"errors"

	"cryptomonitor/internal/provider"
)

const msgInvalidData = "Invalid data received."

// Message converts a fetch cycle error into one short display string.
// It returns "" for a nil error.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var httpErr *provider.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Message()
	}
	if invalidData(err) {
		return msgInvalidData
	}
	return "Request failed: " + err.Error()
}
