package errors

const (
	HttpInternalError      = "internal_error"
	HttpInvalidJsonError   = "invalid_json"
	HttpPayloadTooLarge    = "payload_too_large"
	HttpEventNotFoundError = "event_not_found"
	HttpInvalidPageError   = "invalid_page"
	HttpInvalidIDError     = "invalid_id"
)

// ErrorResponse is the error response body for failures that are not
// validation failures (those use the errors resource).
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
