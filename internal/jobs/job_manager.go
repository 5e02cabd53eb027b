package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

type Job interface {
	Name() string
	Run(ctx context.Context) error
	Interval() time.Duration
}

// JobManager owns the background goroutines. Each registered job gets its own
// cancelable context; Shutdown cancels them all and waits, bounded by the
// caller's deadline.
type JobManager struct {
	jobs        []Job
	logger      *slog.Logger
	wg          sync.WaitGroup
	cancelFuncs map[string]context.CancelFunc
	mu          sync.Mutex
}

func NewJobManager(logger *slog.Logger) *JobManager {
	return &JobManager{
		jobs:        make([]Job, 0),
		logger:      logger,
		cancelFuncs: make(map[string]context.CancelFunc),
	}
}

func (jm *JobManager) Register(job Job) {
	jm.jobs = append(jm.jobs, job)
}

func (jm *JobManager) Start(ctx context.Context) {
	jm.mu.Lock()
	defer jm.mu.Unlock()

	for _, job := range jm.jobs {
		if _, exists := jm.cancelFuncs[job.Name()]; exists {
			continue
		}

		jobCtx, cancel := context.WithCancel(ctx)
		jm.cancelFuncs[job.Name()] = cancel

		jm.wg.Add(1)
		go func(j Job) {
			defer jm.wg.Done()
			jm.logger.Info("Starting Job", "name", j.Name())
			if err := j.Run(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
				jm.logger.Error("Job failed", "job", j.Name(), "error", err)
			}
		}(job)
	}
}

func (jm *JobManager) Shutdown(ctx context.Context) {
	jm.logger.Debug("Shutting down job manager...")
	jm.stopAllJobs()

	done := make(chan struct{})
	go func() {
		jm.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		jm.logger.Debug("All jobs stopped cleanly")
	case <-ctx.Done():
		jm.logger.Warn("Jobs failed to shut down in time, exiting...")
		return
	}
}

func (jm *JobManager) stopAllJobs() {
	jm.mu.Lock()
	defer jm.mu.Unlock()

	for _, job := range jm.jobs {
		if cancel, exists := jm.cancelFuncs[job.Name()]; exists {
			jm.logger.Debug("Stopping Job", "job", job.Name())
			cancel()
			delete(jm.cancelFuncs, job.Name())
		}
	}
}
