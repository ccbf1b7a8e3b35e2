package config

import "sync"

type Configuration struct {
	App           App             `mapstructure:"APP" json:"app" yaml:"app"`
	Log           Log             `mapstructure:"LOG" json:"log" yaml:"log"`
	AviationStack AviationStack   `mapstructure:"AVIATION_STACK" json:"aviation_stack" yaml:"aviation_stack"`
	Redis         Redis           `mapstructure:"REDIS" json:"redis" yaml:"redis"`
	RateLimit     RateLimit       `mapstructure:"RATE_LIMIT" json:"rate_limit" yaml:"rate_limit"`
	Telemetry     TelemetryConfig `mapstructure:"TELEMETRY" yaml:"telemetry"`
	Fluentd       Fluentd         `mapstructure:"FLUENTD" yaml:"fluentd"`
	MCP           MCP             `mapstructure:"MCP" json:"mcp" yaml:"mcp"`
	Copilot       Copilot         `mapstructure:"COPILOT" json:"copilot" yaml:"copilot"`
	Cron          Cron            `mapstructure:"CRON" json:"cron" yaml:"cron"`

	mu sync.RWMutex
}

// Reload 把 decode 解到全新的 Configuration，再於寫鎖內套用可熱更新的區段。
// 設定檔移除的欄位會回到零值。APP、LOG、REDIS、FLUENTD、TELEMETRY、MCP、CRON 需重啟才生效。
func (c *Configuration) Reload(decode func(next *Configuration) error) error {
	next := &Configuration{}
	if err := decode(next); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.AviationStack = next.AviationStack
	c.RateLimit = next.RateLimit
	c.Copilot = next.Copilot
	return nil
}

// AviationStackAPIKey 每次呼叫都讀最新值
func (c *Configuration) AviationStackAPIKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.AviationStack.APIKey
}

func (c *Configuration) AviationStackSettings() AviationStack {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.AviationStack
}

func (c *Configuration) RateLimitSettings() RateLimit {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.RateLimit
}

func (c *Configuration) CopilotSettings() Copilot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Copilot
}
