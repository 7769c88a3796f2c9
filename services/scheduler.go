package services

import (
	"context"
	"log"
	"time"
)

// Scheduler runs the periodic sweeps on fixed intervals, beat-style. Each
// sweep runs in its own goroutine; correctness under overlapping runs comes
// from the status guards in SweepService, not from any global lock.
type Scheduler struct {
	sweeps             *SweepService
	autoCancelInterval time.Duration
	noShowInterval     time.Duration
}

func NewScheduler(sweeps *SweepService, autoCancelInterval, noShowInterval time.Duration) *Scheduler {
	return &Scheduler{
		sweeps:             sweeps,
		autoCancelInterval: autoCancelInterval,
		noShowInterval:     noShowInterval,
	}
}

// Start launches the sweep tickers. They stop when ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	go s.loop(ctx, "auto_cancel_unpaid_orders", s.autoCancelInterval, s.sweeps.AutoCancelUnpaidOrders)
	go s.loop(ctx, "mark_no_show_reservations", s.noShowInterval, s.sweeps.MarkNoShowReservations)
	log.Printf("Sweep scheduler started (auto-cancel every %s, no-show every %s)",
		s.autoCancelInterval, s.noShowInterval)
}

func (s *Scheduler) loop(ctx context.Context, name string, interval time.Duration, run func(context.Context) (string, error)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("Sweep %s stopped", name)
			return
		case <-ticker.C:
			summary, err := run(ctx)
			if err != nil {
				log.Printf("Sweep %s failed: %v", name, err)
				continue
			}
			log.Printf("Sweep %s: %s", name, summary)
		}
	}
}
