package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-rest-facade/internal/logger"
	"github.com/MKhiriev/go-rest-facade/models"
)

const defaultPingInterval = 30 * time.Second

type pingJob struct {
	echo   EchoService
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPingJob creates a pingJob that calls echo.Echo on a ticker. The job is
// idle until Start is called.
func NewPingJob(echo EchoService, log *logger.Logger) PingJob {
	return &pingJob{echo: echo, logger: log}
}

// Start implements PingJob. It stops any previously running job, then
// launches a background goroutine that pings immediately and then every
// interval. If interval is zero or negative it defaults to 30 seconds. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *pingJob) Start(ctx context.Context, interval time.Duration, report func(models.Result[models.Payload])) {
	if interval <= 0 {
		interval = defaultPingInterval
	}
	if report == nil {
		report = func(models.Result[models.Payload]) {}
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			report(Safe(jobCtx, j.logger, func(ctx context.Context) (models.Payload, error) {
				return j.echo.Echo(ctx, defaultEchoMessage)
			}))

			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
			}
		}
	}()
}

// Stop implements PingJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *pingJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
