package cron

import (
	"PedGuard/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine              *cron.Cron
	suggestionMetricJob *job.SuggestionMetricJob
}

func NewCronManager(suggestionMetricJob *job.SuggestionMetricJob) *Manager {
	return &Manager{
		engine:              cron.New(cron.WithSeconds()),
		suggestionMetricJob: suggestionMetricJob,
	}
}

func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@daily", s.suggestionMetricJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("cron engine stopped")
	s.engine.Stop()
}
