package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

const defaultInterval = 30 * time.Minute

// Dashboard builds a report for a free-text location.
type Dashboard interface {
	Build(ctx context.Context, location string) (*weather.Report, error)
}

// Scheduler periodically builds and logs dashboards for watched locations.
// Every run is an independent query; nothing is kept between runs.
type Scheduler struct {
	scheduler *gocron.Scheduler
	dashboard Dashboard
	locations []string
	interval  time.Duration
	timeout   time.Duration
}

// New creates a new Scheduler.
func New(locations []string, interval time.Duration, dashboard Dashboard) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	return &Scheduler{
		scheduler: s,
		dashboard: dashboard,
		locations: locations,
		interval:  interval,
		timeout:   30 * time.Second,
	}
}

// Start schedules the watch job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if len(s.locations) == 0 {
		log.Println("scheduler: no watch locations configured; nothing to schedule")
		return nil
	}

	interval := s.interval
	if interval < time.Minute {
		log.Printf("scheduler: watch interval %s is below 1m; using %s", interval, defaultInterval)
		interval = defaultInterval
	}

	_, err := s.scheduler.Every(interval).Do(s.RunOnce)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// RunOnce builds a report for each watched location in turn. Failures are logged and
// do not stop the remaining locations.
func (s *Scheduler) RunOnce() {
	log.Println("scheduler: running watch job")
	for _, loc := range s.locations {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		report, err := s.dashboard.Build(ctx, loc)
		cancel()

		if err != nil {
			log.Printf("scheduler: watch failed for %q: %v", loc, err)
			continue
		}
		log.Printf("scheduler: %q %s %.1f°C, %s; %s", loc, report.Icon, report.Current.Temperature,
			report.Current.Description, report.Advice.Comfort.Text)
	}
	log.Println("scheduler: completed watch job")
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
