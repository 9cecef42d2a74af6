package response

import (
	"encoding/json"
	"io"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// Meta describes a list view: how many records matched out of the full store.
type Meta struct {
	Total    int    `json:"total"`
	Filtered int    `json:"filtered"`
	SortBy   string `json:"sort_by,omitempty"`
}

func JSON(w io.Writer, data interface{}) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}

func Success(w io.Writer, message string, data interface{}) {
	JSON(w, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func SuccessWithMeta(w io.Writer, message string, data interface{}, meta *Meta) {
	JSON(w, Response{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

func Error(w io.Writer, message string, err interface{}) {
	JSON(w, Response{
		Success: false,
		Message: message,
		Error:   err,
	})
}

func ValidationError(w io.Writer, errors interface{}) {
	JSON(w, Response{
		Success: false,
		Message: "Validation failed",
		Error:   errors,
	})
}

func NotFound(w io.Writer, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, message, nil)
}

func InternalError(w io.Writer, message string) {
	if message == "" {
		message = "Internal error"
	}
	Error(w, message, nil)
}
