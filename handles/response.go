package handles

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wildcam/logging"
	"wildcam/services"
)

// ErrorBody 统一错误响应格式
type ErrorBody struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Error   string `json:"error"`
}

// ErrorResponse 把服务层错误映射为HTTP状态码和错误体
// 非 AppError 一律按 500 处理，内部原因只写日志
func ErrorResponse(c *gin.Context, err error) {
	var appErr *services.AppError
	if !errors.As(err, &appErr) {
		appErr = &services.AppError{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
			Status:  http.StatusInternalServerError,
			Err:     err,
		}
	}

	if appErr.Status >= http.StatusInternalServerError {
		logging.Ctx(c.Request.Context()).Error().
			Err(err).
			Str("code", appErr.Code).
			Str("path", c.Request.URL.Path).
			Msg("请求失败")
	}

	c.AbortWithStatusJSON(appErr.Status, ErrorBody{
		Success: false,
		Code:    appErr.Code,
		Error:   appErr.Message,
	})
}
