package cron

import (
	"context"
	"sync/atomic"

	"flighttracker/internal/service"
	"flighttracker/internal/service/flight"

	"go.uber.org/zap"
)

// CredentialAuditJob 定期確認供應商金鑰仍有設定，缺少時把 readiness 設為 false
type CredentialAuditJob struct {
	logger      *zap.Logger
	credentials flight.CredentialResolver
	health      *service.HealthService

	missing atomic.Bool
}

func NewCredentialAuditJob(
	logger *zap.Logger,
	credentials flight.CredentialResolver,
	health *service.HealthService,
) *CredentialAuditJob {
	return &CredentialAuditJob{
		logger:      logger,
		credentials: credentials,
		health:      health,
	}
}

func (job *CredentialAuditJob) Run() {
	_, ok := job.credentials.Resolve(context.Background())
	job.health.SetReady(ok)

	// 只在狀態變化時記錄，避免每次排程都刷 log
	if prev := job.missing.Swap(!ok); prev == !ok {
		return
	}
	if !ok {
		job.logger.Warn("aviationstack api key not configured")
		return
	}
	job.logger.Info("aviationstack api key configured")
}
