package middleware

import (
	"net/http"
	"time"

	"booking/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	KeyRequestID = "requestId"
	KeyVersion   = "version"
	KeyStartTime = "start-time"
	KeySend      = "send"
)

func setResponseDefaults(r *Response) {
	if r.Code == 0 {
		if r.Error != nil {
			r.Code = common.AsAppError(r.Error).Code
		} else {
			r.Code = http.StatusOK
		}
	}
	if r.Message == "" {
		if r.Error != nil {
			r.Message = common.AsAppError(r.Error).Message
		} else {
			r.Message = "Success"
		}
	}
}

func logResponseError(c *gin.Context, z *zap.Logger, r Response) {
	if r.Error == nil {
		return
	}

	fields := []zap.Field{
		zap.String("request_id", c.GetString(KeyRequestID)),
		zap.String("path", c.Request.URL.Path),
		zap.Int("code", r.Code),
		zap.Error(r.Error),
	}
	if r.Code >= http.StatusInternalServerError {
		z.Error("request failed", fields...)
		return
	}
	z.Info("request rejected", fields...)
}

func getStartTime(c *gin.Context) time.Time {
	if value, exists := c.Get(KeyStartTime); exists {
		if t, ok := value.(time.Time); ok {
			return t
		}
	}
	return time.Now()
}

func buildDebugInfo(c *gin.Context, r Response) *ResponseAPIDebug {
	startTime := getStartTime(c)
	endTime := time.Now()

	var errText *string
	if r.Error != nil {
		s := r.Error.Error()
		errText = &s
	}

	return &ResponseAPIDebug{
		Version:   c.GetString(KeyVersion),
		StartTime: startTime,
		EndTime:   endTime,
		RuntimeMs: endTime.Sub(startTime).Milliseconds(),
		Error:     errText,
	}
}

func buildResponseAPI(c *gin.Context, r Response, shouldDebug bool) ResponseAPI {
	response := ResponseAPI{
		RequestID: c.GetString(KeyRequestID),
		Message:   r.Message,
		Data:      r.Data,
	}

	if r.Error != nil {
		appErr := common.AsAppError(r.Error)
		response.Error = &ResponseAPIError{
			Type:    string(appErr.Type),
			Message: appErr.Message,
		}
	}

	if shouldDebug {
		response.Debug = buildDebugInfo(c, r)
	}

	return response
}

func send(c *gin.Context, z *zap.Logger, shouldDebug bool) func(r Response) {
	return func(r Response) {
		setResponseDefaults(&r)
		logResponseError(c, z, r)
		response := buildResponseAPI(c, r, shouldDebug)

		c.Abort()
		c.JSON(r.Code, response)
	}
}

// Send returns the envelope writer installed by ResponseInit.
func Send(c *gin.Context) func(Response) {
	return c.MustGet(KeySend).(func(Response))
}

func RequestInit() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(KeyRequestID, uuid.New().String())
		version := c.Request.Header.Get("version")
		if version == "" {
			version = "1.0.0"
		}
		c.Set(KeyVersion, version)
		c.Set(KeyStartTime, time.Now())
		c.Next()
	}
}

func ResponseInit(z *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		shouldDebug := gin.Mode() == gin.DebugMode
		c.Set(KeySend, send(c, z, shouldDebug))
		c.Next()
	}
}

// AccessLog writes one line per request once the handler chain has finished.
func AccessLog(z *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		fields := []zap.Field{
			zap.String("request_id", c.GetString(KeyRequestID)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(getStartTime(c))),
		}
		// errors attached with c.Error that did not change the response
		if errs := c.Errors.String(); errs != "" {
			fields = append(fields, zap.String("errors", errs))
		}
		z.Info("request", fields...)
	}
}
