package trend

import (
	"context"
	"sync"
	"time"

	"github.com/roylee0704/gron"

	"fpt/internal/providers"
	"fpt/internal/services"
	"fpt/internal/structures"
	"fpt/internal/trend/interfaces"
)

// Scheduler re-runs every tracked search each interval. Runs are serialised
// with a mutex so a slow scrape cycle never overlaps the next tick.
type Scheduler struct {
	config  *structures.Config
	logger  providers.Logger
	service services.TrendServiceInterface
	cron    *gron.Cron
	opsMu   sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()
	interval := s.config.Trend.Interval

	s.cron.AddFunc(gron.Every(interval*time.Second), func() {
		s.RunAll()
	})

	s.cron.Start()
	s.logger.Infof(providers.TypeApp, "Scheduler started, %d searches every %ds",
		len(s.config.Searches), interval)
}

func (s *Scheduler) RunAll() {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeApp, "Running %d tracked searches...", len(s.config.Searches))
	s.service.RunAll(context.Background())
	s.logger.Infof(providers.TypeApp, "Search cycle complete")
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func NewScheduler(config *structures.Config, logger providers.Logger, service services.TrendServiceInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:  config,
		logger:  logger,
		service: service,
	}
}
