// Package scheduler is the flush-scheduling collaborator for the payload
// accumulator: it listens for watermark-triggered flush requests, runs an
// optional periodic cron flush, and ships each harvested payload through a
// Transport. The accumulator itself never blocks on any of this; the
// notifier hands the signal off to the scheduler's goroutine.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"mercator-hq/ganymede/pkg/relay/buffer"
	"mercator-hq/ganymede/pkg/telemetry"
)

// Transport carries an encoded payload from this process to the primary
// process, where it is handed to the replay dispatcher. Framing and
// delivery semantics are the transport's concern; the scheduler only
// requires that Send returns once the payload is handed off or failed.
type Transport interface {
	Send(ctx context.Context, buf []byte) error
}

// Notifier is a buffer.Notifier that coalesces flush requests onto a
// channel the scheduler drains. PayloadFull never blocks: when a request
// is already pending, further requests in the same burst are dropped,
// which is all the accumulator's best-effort signal promises.
type Notifier struct {
	ch      chan struct{}
	metrics *telemetry.RelayMetrics
}

// NewNotifier creates a notifier. metrics may be nil.
func NewNotifier(metrics *telemetry.RelayMetrics) *Notifier {
	return &Notifier{
		ch:      make(chan struct{}, 1),
		metrics: metrics,
	}
}

// PayloadFull implements buffer.Notifier.
func (n *Notifier) PayloadFull() {
	n.metrics.FlushRequested()
	select {
	case n.ch <- struct{}{}:
	default:
	}
}

// Config contains configuration for the flush scheduler.
type Config struct {
	// Schedule is an optional cron expression for periodic flushes in
	// addition to watermark-triggered ones. Empty disables periodic
	// flushing.
	Schedule string

	// Timeout bounds one flush-and-transmit cycle.
	// Default: 5 seconds
	Timeout time.Duration
}

// DefaultConfig returns the default scheduler configuration.
func DefaultConfig() *Config {
	return &Config{
		Timeout: 5 * time.Second,
	}
}

// Scheduler harvests the accumulator and ships the result. One scheduler
// serves one accumulator; Stop performs a final flush so a process can
// drain its pending updates before teardown.
type Scheduler struct {
	acc       *buffer.Accumulator
	transport Transport
	notifier  *Notifier
	config    *Config
	cron      *cron.Cron
	logger    *slog.Logger
	metrics   *telemetry.RelayMetrics

	mu      sync.Mutex
	running bool
	stop    chan struct{}
	wg      sync.WaitGroup
}

// New creates a scheduler. A nil config selects DefaultConfig; metrics may
// be nil.
func New(acc *buffer.Accumulator, transport Transport, notifier *Notifier, config *Config, metrics *telemetry.RelayMetrics) *Scheduler {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Timeout <= 0 {
		config.Timeout = 5 * time.Second
	}

	return &Scheduler{
		acc:       acc,
		transport: transport,
		notifier:  notifier,
		config:    config,
		cron:      cron.New(),
		logger:    slog.Default().With("component", "relay.scheduler"),
		metrics:   metrics,
	}
}

// Start begins draining flush requests and, when a schedule is configured,
// periodic flushing. The context cancels the scheduler as Stop does.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	if s.config.Schedule != "" {
		if _, err := cron.ParseStandard(s.config.Schedule); err != nil {
			return fmt.Errorf("invalid cron schedule %q: %w", s.config.Schedule, err)
		}
		if _, err := s.cron.AddFunc(s.config.Schedule, func() {
			s.flush("schedule")
		}); err != nil {
			return fmt.Errorf("failed to schedule periodic flush: %w", err)
		}
		s.cron.Start()
	}

	s.stop = make(chan struct{})
	s.wg.Add(1)
	go s.drain(ctx)

	s.running = true
	s.logger.Info("flush scheduler started",
		"schedule", s.config.Schedule,
		"timeout", s.config.Timeout.String(),
	)
	return nil
}

// drain services watermark flush requests until the scheduler stops.
func (s *Scheduler) drain(ctx context.Context) {
	defer s.wg.Done()
	for {
		select {
		case <-s.notifier.ch:
			s.flush("watermark")
		case <-ctx.Done():
			return
		case <-s.stop:
			return
		}
	}
}

// flush harvests the accumulator and ships the encoded payload. An empty
// payload still encodes and ships; replaying it is a no-op on the far
// side, so skipping it here is not worth racing new accumulations for.
func (s *Scheduler) flush(reason string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.Timeout)
	defer cancel()

	batchID := uuid.NewString()

	buf, err := s.acc.TakeBuf()
	if err != nil {
		s.logger.Error("flush aborted, harvest failed",
			"batch_id", batchID,
			"reason", reason,
			"error", err,
		)
		return
	}
	s.metrics.HarvestCompleted(len(buf))

	if err := s.transport.Send(ctx, buf); err != nil {
		// No retry here: pending updates keep accumulating and the next
		// flush carries a fresh batch. Retrying stale bytes belongs to the
		// transport if it wants it.
		s.logger.Error("payload transmit failed",
			"batch_id", batchID,
			"reason", reason,
			"bytes", len(buf),
			"error", err,
		)
		return
	}

	s.logger.Debug("payload shipped",
		"batch_id", batchID,
		"reason", reason,
		"bytes", len(buf),
	)
}

// Stop flushes once more, stops the cron scheduler, and waits for the
// drain goroutine to exit. It is the process-exit hook for non-primary
// processes: pending updates are shipped before teardown.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	cronCtx := s.cron.Stop()
	<-cronCtx.Done()

	close(s.stop)
	s.wg.Wait()

	s.flush("shutdown")

	s.running = false
	s.logger.Info("flush scheduler stopped")
}

// IsRunning reports whether the scheduler is running.
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
