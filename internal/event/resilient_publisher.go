package event

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/logger"
)

type retryEntry struct {
	event   Event
	attempt int
	lastErr error
}

// ResilientPublisher wraps a Bus with retry and dead-letter queuing.
// Engines publish after their transaction commits, so a failing subscriber
// must never surface as an error to the caller.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter

	shutdown     chan struct{}
	shutdownOnce sync.Once
	closeOnce    sync.Once
	closed       atomic.Bool
	wg           sync.WaitGroup
}

// NewResilientPublisher creates a publisher and starts its retry worker
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}
	if maxRetries <= 0 {
		maxRetries = RetryMaxAttempts
	}
	if retryDelay <= 0 {
		retryDelay = RetryInitialDelaySeconds * time.Second
	}

	p := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}
	p.wg.Add(1)
	go p.retryWorker()
	return p, nil
}

// PublishWithRetry publishes synchronously once and queues a retry on failure
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, evt Event) {
	err := p.bus.Publish(ctx, evt)
	if err == nil {
		return
	}

	log := logger.FromContext(ctx)
	if p.closed.Load() {
		log.Warn(LogMsgEventDroppedShutdown, "event_type", evt.Type, "error", err)
		p.writeDeadLetter(evt, 1, err)
		return
	}

	select {
	case p.retryQueue <- retryEntry{event: evt, attempt: 1, lastErr: err}:
		log.Warn(LogMsgEventPublishFailed, "event_type", evt.Type, "error", err)
	default:
		log.Error(LogMsgRetryQueueFull, "event_type", evt.Type, "error", err)
		p.writeDeadLetter(evt, 1, err)
	}
}

// Publish implements Bus. Failures are retried in the background.
func (p *ResilientPublisher) Publish(ctx context.Context, evt Event) error {
	p.PublishWithRetry(ctx, evt)
	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.bus.Subscribe(eventType, handler)
}

func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.shutdown:
			p.drainQueue()
			return
		case entry := <-p.retryQueue:
			p.process(entry)
		}
	}
}

// process retries one entry with exponential backoff until it succeeds,
// exhausts maxRetries or the publisher shuts down.
func (p *ResilientPublisher) process(entry retryEntry) {
	ctx := context.Background()
	for {
		timer := time.NewTimer(CalculateRetryDelay(p.retryDelay, entry.attempt))
		select {
		case <-timer.C:
		case <-p.shutdown:
			timer.Stop()
			p.finalAttempt(entry)
			return
		}

		err := p.bus.Publish(ctx, entry.event)
		if err == nil {
			logger.Info(LogMsgEventRetrySucceeded, "event_type", entry.event.Type, "attempt", entry.attempt)
			return
		}

		entry.lastErr = err
		if entry.attempt >= p.maxRetries {
			logger.Error(LogMsgEventRetryExhausted, "event_type", entry.event.Type, "attempts", entry.attempt+1)
			p.writeDeadLetter(entry.event, entry.attempt+1, err)
			return
		}
		logger.Warn(LogMsgEventRetryFailed, "event_type", entry.event.Type, "attempt", entry.attempt, "error", err)
		entry.attempt++
	}
}

func (p *ResilientPublisher) finalAttempt(entry retryEntry) {
	if err := p.bus.Publish(context.Background(), entry.event); err != nil {
		p.writeDeadLetter(entry.event, entry.attempt+1, err)
	}
}

func (p *ResilientPublisher) drainQueue() {
	drained := 0
	for {
		select {
		case entry := <-p.retryQueue:
			p.finalAttempt(entry)
			drained++
		default:
			if drained > 0 {
				logger.Info(LogMsgQueueDrainedShutdown, "events", drained)
			}
			return
		}
	}
}

func (p *ResilientPublisher) writeDeadLetter(evt Event, attempts int, err error) {
	if p.deadLetter == nil {
		return
	}
	if werr := p.deadLetter.Write(evt, attempts, err); werr != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "event_type", evt.Type, "error", werr)
	}
}

// Shutdown stops the retry worker, giving queued events one last attempt.
// Events still failing are written to the dead-letter file.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.shutdownOnce.Do(func() {
		p.closed.Store(true)
		close(p.shutdown)
	})

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.closeOnce.Do(func() {
			if p.deadLetter != nil {
				_ = p.deadLetter.Close()
			}
		})
		return nil
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout, "error", ctx.Err())
		return ctx.Err()
	}
}
