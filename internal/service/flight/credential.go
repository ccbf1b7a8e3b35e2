package flight

import (
	"context"
	"strings"

	"flighttracker/config"
)

// CredentialResolver 取得供應商金鑰；ok=false 代表未設定
type CredentialResolver interface {
	Resolve(ctx context.Context) (credential string, ok bool)
}

type ConfigCredentialResolver struct {
	conf *config.Configuration
}

// NewConfigCredentialResolver 每次 Resolve 都讀當下設定，熱更新後的新金鑰立即生效
func NewConfigCredentialResolver(conf *config.Configuration) *ConfigCredentialResolver {
	return &ConfigCredentialResolver{conf: conf}
}

func (r *ConfigCredentialResolver) Resolve(_ context.Context) (string, bool) {
	if r == nil || r.conf == nil {
		return "", false
	}
	key := strings.TrimSpace(r.conf.AviationStackAPIKey())
	return key, key != ""
}

// StaticCredential 固定金鑰，測試用
type StaticCredential string

func (s StaticCredential) Resolve(_ context.Context) (string, bool) {
	key := strings.TrimSpace(string(s))
	return key, key != ""
}
