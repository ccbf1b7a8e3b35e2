package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"flighttracker/config"
	"flighttracker/internal/core"
	"flighttracker/internal/database/fluentd/model"
	"flighttracker/internal/database/fluentd/repository"
	cErr "flighttracker/internal/pkg/error"
	"flighttracker/internal/pkg/response"
	"flighttracker/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Response struct {
	logger            *zap.Logger
	trace             *telemetry.Trace
	config            *config.Configuration
	fluentdRepository *repository.LogRepository
}

func NewResponse(
	logger *zap.Logger,
	trace *telemetry.Trace,
	config *config.Configuration,
	fluentdRepository *repository.LogRepository,
) *Response {
	return &Response{
		logger:            logger,
		trace:             trace,
		config:            config,
		fluentdRepository: fluentdRepository,
	}
}

// FormatHandler 把 handler 以 response.Success 設定的 data 原樣輸出成 JSON（不加信封）
func (middleware *Response) FormatHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if skipInstrument(c.FullPath()) {
			c.Next()
			return
		}

		requestTime := time.Now()
		if startTime, exists := c.Get("requestDuration"); exists {
			if t, ok := startTime.(time.Time); ok {
				requestTime = t
			}
		} else {
			c.Set("requestDuration", requestTime)
		}

		// 執行下游
		c.Next()

		// 若已經有錯誤交由 Recovery 處理，或已經寫出回應，就不要再動了
		if len(c.Errors) > 0 || c.Writer.Written() {
			return
		}

		// 以「下游結束後」的狀態碼為準
		statusCode := c.Writer.Status()

		// 若 status >= 400：轉為應用錯誤交給 Recovery 統一輸出
		if statusCode >= http.StatusBadRequest {
			response.AbortWithError(c, cErr.MapHttpStatusToError(statusCode, "request error"))
			return
		}

		data, exists := c.Get("data")
		if !exists {
			return
		}

		ctx, span, end := middleware.trace.WithSpan(middleware.trace.GetTraceContext(c), string(core.SpanResponseMiddleware))
		defer end(nil)

		jsonBytes, err := json.Marshal(data)
		if err != nil {
			// Marshal 失敗視為 500，交給 Recovery 處理
			response.AbortWithError(c, cErr.InternalServer("marshal response failed: "+err.Error()))
			return
		}

		duration := time.Since(requestTime)
		traceID := span.SpanContext().TraceID()
		spanID := span.SpanContext().SpanID()
		preview := safePreview(jsonBytes, 2000)

		middleware.trace.ApplyTraceAttributes(span, core.TraceResponseMeta{
			Path:       c.Request.URL.Path,
			Method:     c.Request.Method,
			Status:     statusCode,
			DurationMs: float64(duration.Milliseconds()),
			Data:       preview,
		})

		middleware.logger.Info("[Response] Request Success",
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Int("status", statusCode),
			zap.Int("bytes", len(jsonBytes)),
			zap.Duration("duration", duration),
			zap.String("spanId", spanID.String()),
			zap.String("traceId", traceID.String()),
		)

		_ = middleware.fluentdRepository.LogResponse(ctx, model.ResponseLog{
			RequestID:   traceID.String(),
			ProjectName: middleware.config.App.Name,
			Code:        cErr.SUCCESS,
			StatusCode:  statusCode,
			Body:        preview,
			ResponseTS:  time.Now().UTC().Format("2006-01-02 15:04:05.999999 UTC"),
			Version:     middleware.config.App.Version,
		})

		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Writer.WriteHeader(statusCode)
		if _, werr := c.Writer.Write(jsonBytes); werr != nil {
			middleware.logger.Warn("write response failed", zap.Error(werr))
		}
	}
}

// safePreview 限制長度的 JSON 預覽，供 trace 與稽核日誌使用
func safePreview(b []byte, max int) string {
	if len(b) > max {
		return fmt.Sprintf("%s…", b[:max])
	}
	return string(b)
}
