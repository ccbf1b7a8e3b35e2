package config

type MCP struct {
	Enabled bool   `mapstructure:"ENABLED" json:"enabled" yaml:"enabled"`
	Path    string `mapstructure:"PATH" json:"path" yaml:"path"`
}

type Copilot struct {
	Model    string `mapstructure:"MODEL" json:"model" yaml:"model"`
	LogLevel string `mapstructure:"LOG_LEVEL" json:"log_level" yaml:"log_level"`
	// 秒
	Timeout int64 `mapstructure:"TIMEOUT" json:"timeout" yaml:"timeout"`
}

type Cron struct {
	// 例如 "0 */5 * * * *"（含秒）；空字串則不排程
	CredentialAudit string `mapstructure:"CREDENTIAL_AUDIT" json:"credential_audit" yaml:"credential_audit"`
}
