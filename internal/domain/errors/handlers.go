package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code      string      `json:"code"`              // Business error code, e.g., "VENDOR_NOT_FOUND"
	Kind      Kind        `json:"kind"`              // Classification driving the UI state
	Retryable bool        `json:"retryable"`         // Whether a retry banner should be offered
	Details   string      `json:"details,omitempty"` // Detailed error information (optional)
	Fields    FieldErrors `json:"fields,omitempty"`  // Per-field validation messages
}

// NewErrorInfo builds the envelope payload for an AppError.
func NewErrorInfo(appErr AppError) *ErrorInfo {
	info := &ErrorInfo{
		Code:      appErr.ErrorCode(),
		Kind:      appErr.Kind(),
		Retryable: appErr.Kind().Retryable(),
		Details:   appErr.Details(),
	}

	if fielded, ok := appErr.(interface{ Fields() FieldErrors }); ok {
		info.Fields = fielded.Fields()
	}

	return info
}
