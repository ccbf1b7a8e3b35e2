package middleware

import (
	"context"
	"errors"
	"strconv"

	"flighttracker/config"
	"flighttracker/internal/core"
	"flighttracker/internal/database/redis/repository"
	cErr "flighttracker/internal/pkg/error"
	"flighttracker/internal/pkg/response"
	"flighttracker/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Limiter 固定視窗計數器
type Limiter interface {
	Enabled() bool
	Consume(ctx context.Context, subject string, limit int, windowSeconds int64) (remaining int, ttlSec int64, err error)
}

const defaultRateLimitWindow = 60

type RateLimit struct {
	logger  *zap.Logger
	trace   *telemetry.Trace
	metric  *telemetry.Metric
	config  *config.Configuration
	limiter Limiter
}

func NewRateLimit(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	config *config.Configuration,
	limiter Limiter,
) *RateLimit {
	return &RateLimit{
		logger:  logger,
		trace:   trace,
		metric:  metric,
		config:  config,
		limiter: limiter,
	}
}

// Guard 依 client IP 限制入站請求；Redis 出錯時放行
func (middleware *RateLimit) Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		conf := middleware.config.RateLimitSettings()
		if !conf.Enabled || conf.Limit <= 0 || middleware.limiter == nil || !middleware.limiter.Enabled() {
			c.Next()
			return
		}
		window := conf.WindowSeconds
		if window <= 0 {
			window = defaultRateLimitWindow
		}

		ctx, span, end := middleware.trace.WithSpan(middleware.trace.GetTraceContext(c), string(core.SpanRateLimitMiddleware))
		clientIP := c.ClientIP()

		remaining, ttlSec, err := middleware.limiter.Consume(ctx, clientIP, conf.Limit, window)
		blocked := errors.Is(err, repository.ErrRateLimitExceeded)
		if err != nil && !blocked {
			middleware.logger.Warn("rate limiter unavailable, request allowed", zap.Error(err))
			end(err)
			c.Next()
			return
		}

		middleware.trace.ApplyTraceAttributes(span, core.TraceRateLimitMiddlewareMeta{
			ClientIP:    clientIP,
			ConfigLimit: conf.Limit,
			Remaining:   remaining,
			TTLSeconds:  ttlSec,
			Blocked:     blocked,
		})

		// 寫入回應標頭，方便呼叫端與排錯
		c.Header("X-RateLimit-Limit", strconv.Itoa(conf.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		if ttlSec > 0 {
			c.Header("X-RateLimit-Reset", strconv.FormatInt(ttlSec, 10))
		}

		if blocked {
			if ttlSec > 0 {
				c.Header("Retry-After", strconv.FormatInt(ttlSec, 10))
			}
			middleware.metric.ObserveRateLimited(c.FullPath())
			end(nil)
			response.AbortWithError(c, cErr.RateLimitExceeded("rate limit exceeded for "+clientIP))
			return
		}
		end(nil)
		c.Next()
	}
}
