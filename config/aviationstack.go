package config

// AviationStack 航班資料供應商設定
//
// APIKey 不在啟動時快取：每次查詢都從這裡讀取，設定檔熱更新後立即生效。
type AviationStack struct {
	APIKey  string `mapstructure:"API_KEY" json:"-" yaml:"api_key"`
	BaseURL string `mapstructure:"BASE_URL" json:"base_url" yaml:"base_url"`
	// 毫秒；0 代表沿用 transport 預設值
	TimeoutMs int64 `mapstructure:"TIMEOUT_MS" json:"timeout_ms" yaml:"timeout_ms"`
}
