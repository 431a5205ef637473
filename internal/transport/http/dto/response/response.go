package response

// ErrorResponse is the error envelope every endpoint shares. Success stays
// false; the optional fields carry extra context for specific failures.
type ErrorResponse struct {
	Success      bool     `json:"success"`
	Error        string   `json:"error"`
	Message      string   `json:"message,omitempty"`
	Details      string   `json:"details,omitempty"`
	ColumnsFound []string `json:"columns_found,omitempty"`
}

// Confirmation is the minimal acknowledgement mutations return.
type Confirmation struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func Error(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

func ErrorWithDetails(msg, details string) ErrorResponse {
	return ErrorResponse{Error: msg, Details: details}
}

func Confirm(msg string) Confirmation {
	return Confirmation{Success: true, Message: msg}
}
