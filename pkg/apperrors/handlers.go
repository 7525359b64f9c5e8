package apperrors

import (
	"sync/atomic"

	"nextignition_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - тело ответа об ошибке: {message, code, error?}
type ErrorResponse struct {
	Message string      `json:"message"`
	Code    ErrorCode   `json:"code"`
	Error   interface{} `json:"error,omitempty"`
}

var debugMode atomic.Bool

// SetDebug включает вывод деталей. Причины 5xx не отдаются клиенту никогда.
func SetDebug(debug bool) {
	debugMode.Store(debug)
}

// GinErrorHandler - обработчик ошибок для Gin
type GinErrorHandler struct {
	Debug bool
}

// HandleGinError - основная логика обработки ошибок для Gin
func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	ctx := c.Request.Context()
	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(ctx, "Server error", appErr.Unwrap(),
			"code", appErr.Code,
			"domain", appErr.Domain,
			"path", c.FullPath(),
		)
	} else if h.Debug {
		logger.CtxWarn(ctx, "Request failed", "code", appErr.Code, "error", appErr.Error())
	}

	resp := ErrorResponse{
		Message: appErr.Message,
		Code:    appErr.Code,
	}
	if appErr.HTTPCode < 500 && appErr.Details != nil {
		resp.Error = appErr.Details
	}

	c.JSON(appErr.HTTPCode, resp)
}

// HandleError - быстрая функция-помощник для Gin
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: debugMode.Load()}
	handler.HandleGinError(c, err)
}

// AsAppError - пытается преобразовать error в *AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
