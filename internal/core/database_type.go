package core

type RedisKey string
type FluentdSubTag string

// ─── Redis Keys ────────────────────────────────────────────────────────────────

const (
	RedisKeyRateLimit  RedisKey = "ratelimit"     // 入站限流計數
	RedisKeyServerName RedisKey = "flighttracker" // 伺服器名稱（key 前綴）
)

// ─── Fluentd ───────────────────────────────────────────────────────────────────

const (
	FluentdRequest  FluentdSubTag = "request_log"
	FluentdResponse FluentdSubTag = "response_log"
	FluentdTrack    FluentdSubTag = "track_flight_log"
)
