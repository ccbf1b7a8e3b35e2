package error

const (
	// 0 ~ 999: 成功類別
	SUCCESS = 0 // 200 OK

	// 40000 ~ 40099: 用戶請求錯誤 (400 系列)
	BAD_REQUEST_BODY = 40000 // 400 - 無效的請求體

	// 40400 ~ 40499: 資源錯誤 (404 系列)
	NOT_FOUND        = 40400 // 404 - 資源未找到
	FLIGHT_NOT_FOUND = 40401 // 404 - 查無航班資料

	// 42900 ~ 42999: 流量限制錯誤 (429 系列)
	RATE_LIMIT_EXCEEDED = 42900 // 429 - 速率限制超過

	// 50000 ~ 50199: 伺服器內部錯誤 (500 系列)
	INTERNAL_ERROR      = 50000 // 500 - 內部錯誤
	CONFIG_ERROR        = 50001 // 500 - 設定錯誤（例如缺少供應商金鑰）
	SERVICE_UNAVAILABLE = 50002 // 503 - 服務暫停

	// 50200 ~ 50499: 外部請求錯誤
	EXTERNAL_REQUEST_ERROR         = 50200 // 外部 API 請求錯誤
	EXTERNAL_RESPONSE_FORMAT_ERROR = 50201 // 外部 API 回應格式錯誤
	GATEWAY_TIMEOUT                = 50400 // 外部 API 超時（對外仍回 500）
)
