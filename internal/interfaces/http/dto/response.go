package dto

// Status values carried in every response envelope
const (
	StatusOK              = "OK"
	StatusInvalidInput    = "InvalidInput"
	StatusNotFound        = "NotFound"
	StatusConflict        = "Conflict"
	StatusInternalFailure = "InternalFailure"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// ErrorInfo represents error details
type ErrorInfo struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// ValidationDetail describes one rejected request field
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Meta represents pagination metadata
type Meta struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(data interface{}) Response {
	return Response{
		Success: true,
		Status:  StatusOK,
		Data:    data,
	}
}

// NewSuccessResponseWithMeta creates a success response with pagination meta
func NewSuccessResponseWithMeta(data interface{}, total int64, page, pageSize int) Response {
	resp := NewSuccessResponse(data)
	resp.Meta = &Meta{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	return resp
}

// NewErrorResponse creates an error response. The message is repeated at the
// top level so clients that only read the envelope still see it.
func NewErrorResponse(status, code, message string, details interface{}) Response {
	return Response{
		Success: false,
		Status:  status,
		Message: message,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

// ListRequest represents common list/pagination request parameters
type ListRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Search   string `form:"search" binding:"omitempty,max=200"`
}

// DefaultListRequest returns a list request with defaults
func DefaultListRequest() ListRequest {
	return ListRequest{
		Page:     1,
		PageSize: 100,
	}
}

// IDRequest represents a request with a numeric id path parameter
type IDRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}
