package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Reanalyzer refreshes every stored analysis
type Reanalyzer interface {
	ReanalyzeAll(ctx context.Context) (int, error)
}

// Scheduler periodically re-underwrites the stored portfolio so analyses
// follow changes to the rate table
type Scheduler struct {
	cron    *cron.Cron
	svc     Reanalyzer
	log     *logrus.Logger
	baseCtx context.Context
	timeout time.Duration
}

// New creates a scheduler. Runs that are still in progress when the next one
// fires are skipped.
func New(baseCtx context.Context, svc Reanalyzer, log *logrus.Logger, timeout time.Duration) *Scheduler {
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	return &Scheduler{
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(log)))),
		svc:     svc,
		log:     log,
		baseCtx: baseCtx,
		timeout: timeout,
	}
}

// Schedule registers the re-analysis job on a standard five-field cron spec
func (s *Scheduler) Schedule(spec string) (cron.EntryID, error) {
	return s.cron.AddFunc(spec, s.Run)
}

// Run performs one re-analysis pass
func (s *Scheduler) Run() {
	ctx := s.baseCtx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	n, err := s.svc.ReanalyzeAll(ctx)
	entry := s.log.WithFields(logrus.Fields{"refreshed": n, "duration": time.Since(start).String()})
	if err != nil {
		entry.Errorf("Scheduled re-analysis failed: %v", err)
		return
	}
	entry.Info("Scheduled re-analysis finished")
}

// Start runs scheduled jobs in the background until Stop
func (s *Scheduler) Start() {
	s.log.Info("Scheduler started")
	s.cron.Start()
}

// Stop waits for a running pass to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("Scheduler stopped")
}
