// Package jobs runs the scheduled background tasks: the daily sales snapshot
// and idempotency key cleanup.
package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dromero-dev/comanda-api/internal/application/service"
	"github.com/dromero-dev/comanda-api/internal/domain/repository"
)

// Scheduler owns the cron instance and the collaborators its jobs touch
type Scheduler struct {
	cron            *cron.Cron
	saleService     *service.SaleService
	idempotencyRepo repository.IdempotencyRepository
}

// NewScheduler creates a scheduler with all jobs registered
func NewScheduler(saleService *service.SaleService, idempotencyRepo repository.IdempotencyRepository) *Scheduler {
	s := &Scheduler{
		cron:            cron.New(),
		saleService:     saleService,
		idempotencyRepo: idempotencyRepo,
	}

	// Daily sales snapshot shortly after midnight, covering the previous day.
	if _, err := s.cron.AddFunc("5 0 * * *", s.logDailySnapshot); err != nil {
		log.Printf("Failed to register daily snapshot job: %v", err)
	}

	// Hourly cleanup of expired idempotency keys.
	if _, err := s.cron.AddFunc("0 * * * *", s.cleanupIdempotencyKeys); err != nil {
		log.Printf("Failed to register idempotency cleanup job: %v", err)
	}

	return s
}

// Start begins running the scheduled jobs
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Println("Background job scheduler started")
}

// Stop halts the scheduler and waits for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("Background job scheduler stopped")
}

func (s *Scheduler) logDailySnapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	yesterday := time.Now().AddDate(0, 0, -1)
	total, err := s.saleService.TotalForDay(ctx, yesterday)
	if err != nil {
		log.Printf("Daily snapshot failed: %v", err)
		return
	}

	log.Printf("Sales for %s: %.2f", yesterday.Format("2006-01-02"), float64(total)/100)
}

func (s *Scheduler) cleanupIdempotencyKeys() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.idempotencyRepo.DeleteExpired(ctx); err != nil {
		log.Printf("Idempotency key cleanup failed: %v", err)
	}
}
