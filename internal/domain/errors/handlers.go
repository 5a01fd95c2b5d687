package errors

// ErrorInfo is the "error" member of a failed response.
type ErrorInfo struct {
	Code    string `json:"code"` // e.g. "NOT_FOUND", "UNIQUENESS_CONFLICT"
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// SuccessResponse wraps every 2xx body.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// CountResult is the data of the /count endpoints.
type CountResult struct {
	Count int64 `json:"count"`
}
