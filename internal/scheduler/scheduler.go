package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/mullinsd/fishing-companion/internal/trips"
	"github.com/mullinsd/fishing-companion/internal/weather"
)

// LocationSource supplies the saved locations whose conditions should be kept
// warm in the snapshot cache.
type LocationSource interface {
	AllLocations() []trips.Location
}

// Scheduler periodically refreshes fishing conditions for every saved
// location.
type Scheduler struct {
	scheduler *gocron.Scheduler
	weather   *weather.Service
	locations LocationSource
	interval  time.Duration
}

// New creates a Scheduler.
func New(locations LocationSource, interval time.Duration, svc *weather.Service) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		weather:   svc,
		locations: locations,
		interval:  interval,
	}
}

// Start schedules the periodic refresh job and starts the underlying
// scheduler. The location list is re-read on every run, so spots saved after
// startup are picked up without a restart.
func (s *Scheduler) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		locations := s.locations.AllLocations()
		if len(locations) == 0 {
			return
		}

		log.Printf("scheduler: refreshing conditions for %d locations", len(locations))

		var wg sync.WaitGroup
		for _, loc := range locations {
			loc := loc
			wg.Add(1)
			go func() {
				defer wg.Done()

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := s.weather.RefreshLocation(ctx, loc.ID, loc.Latitude, loc.Longitude); err != nil {
					log.Printf("scheduler: refresh failed for %s: %v", loc.Name, err)
				}
			}()
		}
		wg.Wait()
		log.Println("scheduler: completed conditions refresh")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
