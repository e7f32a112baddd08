package utils

// APIResponse is the standard JSON envelope every endpoint returns.
// Success : { "status": true,  "message": "...", "data": { ... } }
// Failure : { "status": false, "message": "...", "errors": "..." }
type APIResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// BuildResponseSuccess is used for HTTP 200/201 responses.
func BuildResponseSuccess(message string, data interface{}) APIResponse {
	return APIResponse{
		Status:  true,
		Message: message,
		Data:    data,
	}
}

// BuildResponseFailed is used for error responses (400, 401, 403, ...).
func BuildResponseFailed(message string, err interface{}, data interface{}) APIResponse {
	return APIResponse{
		Status:  false,
		Message: message,
		Errors:  err,
		Data:    data,
	}
}
