package cosmosrest

import (
	"encoding/json"
	"fmt"
)

// APIError is the error body returned by the gRPC gateway of a cosmos node.
type APIError struct {
	Code       int               `json:"code"`
	Message    string            `json:"message"`
	Details    []json.RawMessage `json:"details"`
	StatusCode int               `json:"-"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("cosmos rest error status: %d, code: %d, message: %s", e.StatusCode, e.Code, e.Message)
}

func decodeAPIError(status int, body []byte) error {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Message == "" {
		// If the body is not parsed, we return a general error.
		return fmt.Errorf("unexpected status %d and cannot parse error body: %s", status, string(body))
	}

	apiErr.StatusCode = status
	return &apiErr
}
