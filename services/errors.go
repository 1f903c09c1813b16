package services

import (
	"errors"
	"fmt"
	"net/http"
)

// 错误码（对外稳定）
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeNotFound           = "NOT_FOUND"
	CodeCatalogUnavailable = "CATALOG_UNAVAILABLE"
	CodeLedgerUnavailable  = "LEDGER_UNAVAILABLE"
	CodeBadRequest         = "BAD_REQUEST"
)

// 用于 errors.Is 判断
var (
	ErrValidation         = &AppError{Code: CodeValidation}
	ErrNotFound           = &AppError{Code: CodeNotFound}
	ErrCatalogUnavailable = &AppError{Code: CodeCatalogUnavailable}
	ErrLedgerUnavailable  = &AppError{Code: CodeLedgerUnavailable}
)

// AppError 服务层错误
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error // 内部原因，不返回给客户端
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// Is 错误码相同即视为同一类错误
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

func ValidationError(msg string) *AppError {
	return &AppError{Code: CodeValidation, Message: msg, Status: http.StatusBadRequest}
}

func NotFound(what string) *AppError {
	return &AppError{Code: CodeNotFound, Message: what + " not found", Status: http.StatusNotFound}
}

func CatalogUnavailable(err error) *AppError {
	return &AppError{
		Code:    CodeCatalogUnavailable,
		Message: "failed to load videos",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func LedgerUnavailable(err error) *AppError {
	return &AppError{
		Code:    CodeLedgerUnavailable,
		Message: "tag storage unavailable",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func BadRequest(msg string) *AppError {
	return &AppError{Code: CodeBadRequest, Message: msg, Status: http.StatusBadRequest}
}
