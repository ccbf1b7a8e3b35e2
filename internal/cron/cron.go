package cron

import (
	"context"

	"flighttracker/config"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCron, NewCredentialAuditJob)

type Cron struct {
	logger          *zap.Logger
	conf            *config.Configuration
	server          *cron.Cron
	credentialAudit *CredentialAuditJob
}

// NewCron .
func NewCron(logger *zap.Logger, conf *config.Configuration, credentialAudit *CredentialAuditJob) *Cron {
	server := cron.New(
		cron.WithSeconds(),
	)

	return &Cron{
		logger:          logger,
		conf:            conf,
		server:          server,
		credentialAudit: credentialAudit,
	}
}

func (c *Cron) Run() error {
	// 啟動時先檢查一次，readiness 才不會等到第一個排程
	c.credentialAudit.Run()

	if spec := c.conf.Cron.CredentialAudit; spec != "" {
		if _, err := c.server.AddFunc(spec, c.credentialAudit.Run); err != nil {
			return err
		}
		c.logger.Info("cron job registered", zap.String("job", "credential_audit"), zap.String("spec", spec))
	}

	c.server.Start()
	return nil
}

func (c *Cron) Stop(ctx context.Context) error {
	select {
	case <-c.server.Stop().Done():
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}
