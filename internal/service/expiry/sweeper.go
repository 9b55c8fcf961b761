// Package expiry отклоняет заявки pending, на которые персонал не ответил вовремя
package expiry

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
)

// Sweeper периодически отклоняет просроченные заявки
type Sweeper struct {
	repo         BookingRepository
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger

	interval time.Duration
	ttl      time.Duration

	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewSweeper создает новый экземпляр очистки
func NewSweeper(
	repo BookingRepository,
	interval time.Duration,
	ttl time.Duration,
	location *time.Location,
	metrics Metrics,
	logger Logger,
) *Sweeper {
	if interval <= 0 {
		interval = time.Duration(domain.DefaultExpirySweepSeconds) * time.Second
	}
	return &Sweeper{
		repo:         repo,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{Location: location},
		logger:       logger,
		interval:     interval,
		ttl:          ttl,
		done:         make(chan struct{}),
	}
}

// Start запускает фоновую очистку; первый проход выполняется сразу
// Очистка останавливается через Stop или отмену ctx
func (s *Sweeper) Start(ctx context.Context) {
	s.logger.Info("Sweeper: starting with interval=%v, ttl=%v", s.interval, s.ttl)

	s.wg.Add(1)
	go s.run(ctx)
}

// Stop останавливает очистку и ждет завершения текущего прохода
// Повторный вызов безопасен
func (s *Sweeper) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
	s.wg.Wait()
}

// SweepOnce отклоняет заявки, ожидающие ответа дольше ttl
// Возвращает количество отклоненных заявок
func (s *Sweeper) SweepOnce(ctx context.Context) (int64, error) {
	now := s.timeProvider.Now()

	// created_at < now - ttl эквивалентно now - created_at > ttl
	count, err := s.repo.DeclineStalePending(ctx, now.Add(-s.ttl), domain.ExpiredDeclineReason, now)
	if err != nil {
		return 0, err
	}

	if count > 0 {
		s.metrics.BookingsExpired(count)
	}
	return count, nil
}

func (s *Sweeper) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep(ctx)

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-s.done:
			s.logger.Info("Sweeper: stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Sweeper: context cancelled")
			return
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	count, err := s.SweepOnce(ctx)
	if err != nil {
		s.logger.Error("Sweeper: failed to decline stale requests: %v", err)
		return
	}
	if count > 0 {
		s.logger.Info("Sweeper: declined %d expired requests", count)
	}
}
