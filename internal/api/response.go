package api

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope around every JSON body the API returns.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo contains error details.
type ErrorInfo struct {
	Message string    `json:"message"`
	Code    ErrorCode `json:"code"`
}

// ErrorCode is the machine-readable kind of a failed request.
type ErrorCode string

const (
	CodeBadRequest       ErrorCode = "BAD_REQUEST"
	CodeUnauthorized     ErrorCode = "UNAUTHORIZED"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
	CodeInternal         ErrorCode = "INTERNAL_ERROR"
	CodeStoreDisabled    ErrorCode = "STORE_DISABLED"
	CodeUnhealthy        ErrorCode = "HEALTH_CHECK_FAILED"
)

// Status returns the HTTP status sent with c.
func (c ErrorCode) Status() int {
	switch c {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	case CodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case CodeStoreDisabled, CodeUnhealthy:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WriteJSON writes v with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// WriteSuccess writes data in a 200 envelope.
func WriteSuccess(w http.ResponseWriter, data interface{}) error {
	return WriteJSON(w, http.StatusOK, Response{Success: true, Data: data})
}

// WriteError writes a failed envelope with the status that belongs to code.
func WriteError(w http.ResponseWriter, code ErrorCode, message string) error {
	return WriteJSON(w, code.Status(), Response{
		Error: &ErrorInfo{Message: message, Code: code},
	})
}

func WriteBadRequest(w http.ResponseWriter, message string) error {
	return WriteError(w, CodeBadRequest, message)
}

func WriteNotFound(w http.ResponseWriter, message string) error {
	return WriteError(w, CodeNotFound, message)
}

func WriteUnauthorized(w http.ResponseWriter, message string) error {
	return WriteError(w, CodeUnauthorized, message)
}

// WriteInternalError hides the cause from the client; log it before calling.
func WriteInternalError(w http.ResponseWriter, message string) error {
	return WriteError(w, CodeInternal, message)
}

// WriteStoreDisabled answers admin calls when the day cache is turned off.
func WriteStoreDisabled(w http.ResponseWriter) error {
	return WriteError(w, CodeStoreDisabled, "Day cache is disabled")
}
