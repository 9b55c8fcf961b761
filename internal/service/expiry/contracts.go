package expiry

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	DeclineStalePending(ctx context.Context, createdBefore time.Time, reason string, decidedAt time.Time) (int64, error)
}

// Metrics счетчик автоматически отклоненных заявок
type Metrics interface {
	BookingsExpired(count int64)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает локальное время ресторана
func (p *RealTimeProvider) Now() time.Time {
	return domain.WallClock(time.Now(), p.Location)
}
