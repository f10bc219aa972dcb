// Package notify delivers phase notifications on a best-effort basis.
//
// Service.Notify never blocks: messages are queued for a single worker that
// hands them to every Sender. Failed deliveries are logged and dropped.
package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Sender delivers one notification over a single channel.
type Sender interface {
	Name() string
	Send(ctx context.Context, title, message string) error
}

// Config tunes the notification service.
type Config struct {
	Title         string
	QueueSize     int
	RatePerSecond float64
	Burst         int
	SendTimeout   time.Duration
}

// Service fans notifications out to its senders.
type Service struct {
	config  Config
	senders []Sender
	log     zerolog.Logger
	limiter *rate.Limiter
	queue   chan string

	mu     sync.Mutex
	closed bool
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New starts a notification service. Close must be called to stop its worker.
func New(config Config, logger zerolog.Logger, senders ...Sender) *Service {
	if config.Title == "" {
		config.Title = "Work Scheduler"
	}
	if config.QueueSize <= 0 {
		config.QueueSize = 32
	}
	if config.SendTimeout <= 0 {
		config.SendTimeout = 5 * time.Second
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if config.RatePerSecond > 0 {
		burst := config.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(config.RatePerSecond), burst)
	}

	ctx, cancel := context.WithCancel(context.Background())
	service := &Service{
		config:  config,
		senders: senders,
		log:     logger.With().Str("component", "notify").Logger(),
		limiter: limiter,
		queue:   make(chan string, config.QueueSize),
		cancel:  cancel,
	}

	service.wg.Add(1)
	go func() {
		defer service.wg.Done()
		service.run(ctx)
	}()
	return service
}

// Notify queues message for delivery. Messages over the rate limit, or
// arriving while the queue is full or after Close, are dropped.
func (service *Service) Notify(message string) {
	service.mu.Lock()
	defer service.mu.Unlock()
	if service.closed {
		return
	}
	if !service.limiter.Allow() {
		service.log.Debug().Str("message", message).Msg("notification rate limited")
		return
	}
	select {
	case service.queue <- message:
	default:
		service.log.Warn().Str("message", message).Msg("notification queue full, dropping")
	}
}

// Close stops the worker. Queued but undelivered messages are discarded.
func (service *Service) Close() {
	service.mu.Lock()
	if service.closed {
		service.mu.Unlock()
		return
	}
	service.closed = true
	service.mu.Unlock()

	service.cancel()
	service.wg.Wait()
}

func (service *Service) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case message := <-service.queue:
			service.deliver(ctx, message)
		}
	}
}

func (service *Service) deliver(ctx context.Context, message string) {
	for _, sender := range service.senders {
		if err := service.send(ctx, sender, message); err != nil {
			service.log.Warn().
				Err(err).
				Str("sender", sender.Name()).
				Str("message", message).
				Msg("notification send failed")
			continue
		}
		service.log.Debug().Str("sender", sender.Name()).Str("message", message).Msg("notification sent")
	}
}

func (service *Service) send(ctx context.Context, sender Sender, message string) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("sender panicked: %v", recovered)
		}
	}()
	sendCtx, cancel := context.WithTimeout(ctx, service.config.SendTimeout)
	defer cancel()
	return sender.Send(sendCtx, service.config.Title, message)
}
