package response

import (
	"net/http"

	cErr "flighttracker/internal/pkg/error"

	"github.com/gin-gonic/gin"
)

// ErrorBody 所有失敗回應的 JSON 形狀：{ "error": "...", "details": [...] }
type ErrorBody struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

const headerRequestID = "X-Request-ID"

// Success 由 Response middleware 統一輸出；data 原樣序列化，不另外包信封
func Success(c *gin.Context, data any) {
	c.Set("data", data)
	c.Abort()
}

func AbortWithError(c *gin.Context, err error) {
	c.Error(err)
	c.Abort()
}

func Fail(c *gin.Context, requestID string, httpCode int, body ErrorBody) {
	if requestID != "" {
		c.Header(headerRequestID, requestID)
	}
	c.JSON(httpCode, body)
	c.Abort()
}

func FailByErr(c *gin.Context, requestID string, err error) {
	v, ok := err.(*cErr.Error)
	if !ok {
		v = cErr.InternalServer(err.Error())
	}
	Fail(c, requestID, v.HttpCode(), ErrorBody{Error: v.Error(), Details: v.Details()})
}

// Generic 未知錯誤或 panic 的固定回應
func Generic(c *gin.Context, requestID string) {
	Fail(c, requestID, http.StatusInternalServerError, ErrorBody{Error: cErr.GenericFailureMessage})
}
