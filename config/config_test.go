package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReloadReplacesLiveSections(t *testing.T) {
	conf := &Configuration{}
	conf.App.Name = "flighttracker"
	conf.AviationStack.APIKey = "secret"
	conf.RateLimit = RateLimit{Enabled: true, Limit: 10}
	conf.Copilot.Model = "gpt-4.1"

	require.NoError(t, conf.Reload(func(next *Configuration) error {
		next.App.Name = "renamed"
		next.RateLimit.Limit = 5
		return nil
	}))

	assert.Empty(t, conf.AviationStackAPIKey())
	assert.Equal(t, RateLimit{Limit: 5}, conf.RateLimitSettings())
	assert.Empty(t, conf.CopilotSettings().Model)
	// APP 只在啟動時讀取
	assert.Equal(t, "flighttracker", conf.App.Name)
}

func TestReloadKeepsCurrentOnDecodeError(t *testing.T) {
	conf := &Configuration{}
	conf.AviationStack.APIKey = "secret"

	err := conf.Reload(func(next *Configuration) error {
		return errors.New("yaml: line 3: mapping values are not allowed")
	})
	require.Error(t, err)
	assert.Equal(t, "secret", conf.AviationStackAPIKey())
}

func TestReloadConcurrentReads(t *testing.T) {
	conf := &Configuration{}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			_ = conf.Reload(func(next *Configuration) error {
				next.RateLimit.Limit = i
				next.Copilot.Model = "gpt-4.1"
				next.AviationStack.APIKey = "rotated"
				return nil
			})
		}
	}()
	for i := 0; i < 100; i++ {
		_ = conf.RateLimitSettings()
		_ = conf.CopilotSettings()
		_ = conf.AviationStackSettings()
	}
	<-done
	assert.Equal(t, 99, conf.RateLimitSettings().Limit)
}
