package middleware

import (
	"time"
)

type Response struct {
	Data    any
	Message string
	Code    int
	Error   error
}

type ResponseAPIDebug struct {
	Version   string    `json:"version"`
	Error     *string   `json:"error"`
	StartTime time.Time `json:"startTime"` // ISO8601 format, e.g., "2025-01-09T15:04:05Z07:00"
	EndTime   time.Time `json:"endTime"`
	RuntimeMs int64     `json:"runtimeMs"`
}

type ResponseAPIError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ResponseAPI is the single JSON shape used for every non-page response.
type ResponseAPI struct {
	RequestID string            `json:"requestId"`
	Data      any               `json:"data"`
	Message   string            `json:"message"`
	Error     *ResponseAPIError `json:"error,omitempty"`
	Debug     *ResponseAPIDebug `json:"debug,omitempty"`
}
