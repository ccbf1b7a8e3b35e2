package error

import (
	"errors"
	"net/http"
)

type Error struct {
	httpCode  int
	errorCode int
	errorMsg  string
	errorDesc string
	details   any
}

func New(httpCode, errorCode int, errorMsg string, errorDesc string) *Error {
	return &Error{
		httpCode:  httpCode,
		errorCode: errorCode,
		errorMsg:  errorMsg,
		errorDesc: errorDesc,
	}
}

// From 將任意 error 轉為 *Error；非應用錯誤一律視為 500，原始訊息只留在 desc（僅供日誌）
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return InternalServer(err.Error())
}

// WithDetails 附加結構化細節（例如欄位驗證錯誤），會原樣輸出到回應的 details
func (e *Error) WithDetails(details any) *Error {
	cp := *e
	cp.details = details
	return &cp
}

// ✅ 用戶端錯誤 (400 系列)
func ValidateErr(errorDesc string) *Error {
	return New(http.StatusBadRequest, BAD_REQUEST_BODY, "Invalid request parameters", errorDesc)
}

func BadRequestBody(errorDesc string) *Error {
	return New(http.StatusBadRequest, BAD_REQUEST_BODY, "Invalid request body", errorDesc)
}

// ✅ 資源找不到 (404)
func NotFound(errorMsg string, errorCode ...int) *Error {
	errCode := NOT_FOUND
	if len(errorCode) > 0 {
		errCode = errorCode[0]
	}
	return New(http.StatusNotFound, errCode, errorMsg, "")
}

func RateLimitExceeded(errorDesc string) *Error {
	return New(http.StatusTooManyRequests, RATE_LIMIT_EXCEEDED, "Too many requests", errorDesc)
}

// ✅ 伺服器內部錯誤 (500 系列)
func InternalServer(errorDesc string) *Error {
	return New(http.StatusInternalServerError, INTERNAL_ERROR, GenericFailureMessage, errorDesc)
}

func ConfigError(errorMsg string) *Error {
	return New(http.StatusInternalServerError, CONFIG_ERROR, errorMsg, "")
}

func ServiceUnavailable(errorDesc string) *Error {
	return New(http.StatusServiceUnavailable, SERVICE_UNAVAILABLE, "Service unavailable", errorDesc)
}

// ✅ 外部 API 錯誤：對呼叫端一律回 500 與通用訊息，狀態碼細節只進 desc
func ExternalRequestError(errorDesc string) *Error {
	return New(http.StatusInternalServerError, EXTERNAL_REQUEST_ERROR, GenericFailureMessage, errorDesc)
}

func ExternalResponseFormatError(errorDesc string) *Error {
	return New(http.StatusInternalServerError, EXTERNAL_RESPONSE_FORMAT_ERROR, GenericFailureMessage, errorDesc)
}

func GatewayTimeout(errorDesc string) *Error {
	return New(http.StatusInternalServerError, GATEWAY_TIMEOUT, GenericFailureMessage, errorDesc)
}

// GenericFailureMessage 任何未分類失敗對外顯示的訊息
const GenericFailureMessage = "Failed to track flight. Please try again later."

func (e *Error) HttpCode() int {
	return e.httpCode
}

func (e *Error) ErrorCode() int {
	return e.errorCode
}

func (e *Error) ErrorDesc() string {
	return e.errorDesc
}

func (e *Error) Details() any {
	return e.details
}

func (e *Error) Error() string {
	return e.errorMsg
}

func MapHttpStatusToError(status int, desc string) *Error {
	switch status {
	case http.StatusBadRequest:
		return BadRequestBody(desc)
	case http.StatusNotFound:
		return New(http.StatusNotFound, NOT_FOUND, "Not found", desc)
	case http.StatusTooManyRequests:
		return RateLimitExceeded(desc)
	case http.StatusServiceUnavailable:
		return ServiceUnavailable(desc)
	default:
		return InternalServer(desc)
	}
}
