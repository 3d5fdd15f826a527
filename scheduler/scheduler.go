package scheduler

import (
	"context"
	"sync"

	"github.com/robfig/cron/v3"

	"denizyil/pricewatch/logger"
)

// Batch is the unit of scheduled work.
type Batch interface {
	RunOnce(ctx context.Context, triggeredBy string) error
}

// Scheduler runs scrape batches on a cron expression, plus one immediate
// run at startup. Overlapping runs are skipped rather than queued.
type Scheduler struct {
	cron    *cron.Cron
	batch   Batch
	spec    string
	ctx     context.Context
	running sync.Mutex
}

func New(ctx context.Context, batch Batch, spec string) *Scheduler {
	return &Scheduler{
		cron:  cron.New(),
		batch: batch,
		spec:  spec,
		ctx:   ctx,
	}
}

// Start schedules the batch and kicks off an immediate startup run.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, func() { s.run("schedule") }); err != nil {
		return err
	}

	go s.run("startup")

	s.cron.Start()
	logger.ForRunner().Info().Str("cron", s.spec).Msg("Scheduler started")
	return nil
}

// Stop halts the cron loop and waits for any in-flight run to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.running.Lock()
	s.running.Unlock()
	logger.ForRunner().Info().Msg("Scheduler stopped")
}

func (s *Scheduler) run(triggeredBy string) {
	if !s.running.TryLock() {
		logger.ForRunner().Warn().Str("triggered_by", triggeredBy).Msg("Previous batch still running, skipping")
		return
	}
	defer s.running.Unlock()

	if err := s.batch.RunOnce(s.ctx, triggeredBy); err != nil {
		logger.ForRunner().Error().Err(err).Msg("Scrape batch failed")
	}
}
