package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// JobFunc is a maintenance task body. The returned count is whatever
// the task considers its unit of work, purely for logging.
type JobFunc func(ctx context.Context) (int64, error)

// Job is a registered maintenance task and its run bookkeeping.
type Job struct {
	Name     string
	Schedule string
	LastRun  time.Time
	LastErr  string
	Runs     int64
	running  bool
}

// Service runs registered maintenance jobs on cron schedules.
type Service struct {
	cron *cron.Cron
	mu   sync.Mutex
	jobs map[string]*Job
}

func NewService() *Service {
	return &Service{
		cron: cron.New(cron.WithSeconds()),
		jobs: make(map[string]*Job),
	}
}

// Register adds a job under a six-field cron schedule. Overlapping runs
// of the same job are skipped.
func (s *Service) Register(name, schedule string, fn JobFunc) error {
	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	if _, err := parser.Parse(schedule); err != nil {
		return fmt.Errorf("invalid cron schedule for %s: %w", name, err)
	}

	job := &Job{Name: name, Schedule: schedule}
	s.mu.Lock()
	s.jobs[name] = job
	s.mu.Unlock()

	_, err := s.cron.AddFunc(schedule, func() {
		s.run(job, fn)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule %s: %w", name, err)
	}
	return nil
}

func (s *Service) run(job *Job, fn JobFunc) {
	s.mu.Lock()
	if job.running {
		s.mu.Unlock()
		slog.Warn("Skipping scheduled job, previous run still active", "job", job.Name)
		return
	}
	job.running = true
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	started := time.Now()
	count, err := fn(ctx)

	s.mu.Lock()
	job.running = false
	job.LastRun = started
	job.Runs++
	if err != nil {
		job.LastErr = err.Error()
	} else {
		job.LastErr = ""
	}
	s.mu.Unlock()

	if err != nil {
		slog.Error("Scheduled job failed", "job", job.Name, "error", err.Error())
		return
	}
	slog.Info("Scheduled job finished", "job", job.Name, "count", count, "duration", time.Since(started).String())
}

// Start begins executing registered jobs.
func (s *Service) Start() {
	s.cron.Start()
	slog.Info("Scheduler started", "jobs", len(s.jobs))
}

// Stop halts scheduling and waits for in-flight runs to finish.
func (s *Service) Stop() {
	<-s.cron.Stop().Done()
	slog.Info("Scheduler stopped")
}

// Jobs returns a snapshot of the registered jobs.
func (s *Service) Jobs() []Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobs := make([]Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		jobs = append(jobs, *j)
	}
	return jobs
}
