package cron

import (
	"Trendscope/internal/api/config"
	"Trendscope/internal/job"
	"Trendscope/internal/model"
	"Trendscope/internal/pkg/period"
	"Trendscope/internal/service"
	"fmt"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type jobSpec struct {
	spec string
	job  *job.RankingJob
}

type Manager struct {
	engine *cron.Cron
	jobs   []jobSpec
}

func NewCronManager(cfg config.CronConfig, trigger service.RankingTriggerService) *Manager {
	specs := []struct {
		spec  string
		scope string
		g     period.Granularity
	}{
		{cfg.ProductFourHourly, model.ScopeProduct, period.FourHourly},
		{cfg.ProductDaily, model.ScopeProduct, period.Daily},
		{cfg.ProductMonthly, model.ScopeProduct, period.Monthly},
		{cfg.ProductYearly, model.ScopeProduct, period.Yearly},
		{cfg.ArticleDaily, model.ScopeArticle, period.Daily},
		{cfg.ArticleMonthly, model.ScopeArticle, period.Monthly},
	}

	jobs := make([]jobSpec, 0, len(specs))
	for _, s := range specs {
		if s.spec == "" {
			continue
		}
		jobs = append(jobs, jobSpec{spec: s.spec, job: job.NewRankingJob(s.scope, s.g, trigger)})
	}

	return &Manager{
		engine: cron.New(cron.WithSeconds(), cron.WithChain(cron.Recover(cron.DefaultLogger))),
		jobs:   jobs,
	}
}

// RegisterJobs 注册定时任务，表达式为空的任务不注册
func (s *Manager) RegisterJobs() error {
	for _, j := range s.jobs {
		if _, err := s.engine.AddJob(j.spec, j.job); err != nil {
			return fmt.Errorf("register %s with %q: %w", j.job.Name(), j.spec, err)
		}
		log.Info("cron job registered", "job", j.job.Name(), "spec", j.spec)
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

// Stop 等待正在执行的任务结束
func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	<-s.engine.Stop().Done()
}
