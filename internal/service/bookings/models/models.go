package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	"github.com/m04kA/SMC-TableBookingService/internal/schedule"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// DeclineBookingRequest запрос на отклонение бронирования
type DeclineBookingRequest struct {
	UserID int64  `json:"userId"`
	Reason string `json:"reason"`
}

// GetRestaurantBookingsRequest запрос очереди бронирований ресторана
type GetRestaurantBookingsRequest struct {
	UserID       int64      `json:"userId"`
	RestaurantID int64      `json:"restaurantId"`
	TableID      *int64     `json:"tableId,omitempty"` // Фильтр по столу (опционально)
	Date         *time.Time `json:"date,omitempty"`    // Дата бронирований (опционально)
	Status       *string    `json:"status,omitempty"`  // Фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetRestaurantBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		RestaurantID: r.RestaurantID,
		TableID:      r.TableID,
	}

	if r.Date != nil {
		from := domain.DateOnly(*r.Date)
		to := from.AddDate(0, 0, 1)
		filter.From = &from
		filter.To = &to
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Statuses = []domain.BookingStatus{status}
	}

	return filter, nil
}

// TableActionRequest запрос действия персонала со столом
type TableActionRequest struct {
	UserID       int64 `json:"userId"`
	RestaurantID int64 `json:"restaurantId"`
	TableID      int64 `json:"tableId"`
}

// WalkInRequest запрос на посадку гостей без брони
type WalkInRequest struct {
	TableActionRequest
	GuestName  string `json:"guestName"`
	GuestCount int    `json:"guestCount"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64   `json:"id"`
	RestaurantID  int64   `json:"restaurantId"`
	TableID       int64   `json:"tableId"`
	GuestName     string  `json:"guestName"`
	GuestPhone    string  `json:"guestPhone,omitempty"`
	GuestCount    int     `json:"guestCount"`
	DateTime      string  `json:"dateTime"` // "2025-10-15T19:00:00"
	Status        string  `json:"status"`
	DeclineReason *string `json:"declineReason,omitempty"`
	DecidedAt     *string `json:"decidedAt,omitempty"`

	// Только для заявок pending
	ExpiresInSeconds *int    `json:"expiresInSeconds,omitempty"`
	Countdown        *string `json:"countdown,omitempty"` // "2:05"

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingStatusResponse ответ гостю о его заявке
// Доступен без авторизации по ID, поэтому имя и телефон гостя в нем не раскрываются
type BookingStatusResponse struct {
	ID            int64   `json:"id"`
	RestaurantID  int64   `json:"restaurantId"`
	TableID       int64   `json:"tableId"`
	GuestCount    int     `json:"guestCount"`
	DateTime      string  `json:"dateTime"`
	Status        string  `json:"status"`
	DeclineReason *string `json:"declineReason,omitempty"`

	ExpiresInSeconds *int    `json:"expiresInSeconds,omitempty"`
	Countdown        *string `json:"countdown,omitempty"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking конвертирует domain бронирование в ответ
// Для заявки pending добавляется обратный отсчет до автоотклонения
func FromDomainBooking(b *domain.Booking, now time.Time, ttl time.Duration) *BookingResponse {
	resp := &BookingResponse{
		ID:            b.ID,
		RestaurantID:  b.RestaurantID,
		TableID:       b.TableID,
		GuestName:     b.GuestName,
		GuestPhone:    b.GuestPhone,
		GuestCount:    b.GuestCount,
		DateTime:      b.DateTime.Format(domain.DateTimeFormat),
		Status:        string(b.Status),
		DeclineReason: b.DeclineReason,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}

	if b.DecidedAt != nil {
		decided := b.DecidedAt.Format(domain.DateTimeFormat)
		resp.DecidedAt = &decided
	}

	if b.IsPending() {
		left := schedule.PendingSecondsLeft(b.CreatedAt, now, ttl)
		countdown := schedule.FormatCountdown(left)
		resp.ExpiresInSeconds = &left
		resp.Countdown = &countdown
	}

	return resp
}

// FromDomainBookingStatus конвертирует domain бронирование в публичный ответ гостю
func FromDomainBookingStatus(b *domain.Booking, now time.Time, ttl time.Duration) *BookingStatusResponse {
	full := FromDomainBooking(b, now, ttl)
	return &BookingStatusResponse{
		ID:               full.ID,
		RestaurantID:     full.RestaurantID,
		TableID:          full.TableID,
		GuestCount:       full.GuestCount,
		DateTime:         full.DateTime,
		Status:           full.Status,
		DeclineReason:    full.DeclineReason,
		ExpiresInSeconds: full.ExpiresInSeconds,
		Countdown:        full.Countdown,
	}
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking, now time.Time, ttl time.Duration) *BookingListResponse {
	items := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, *FromDomainBooking(b, now, ttl))
	}
	return &BookingListResponse{
		Bookings: items,
		Total:    len(items),
	}
}

// ToDomainBookingStatus конвертирует строку в domain статус
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status, ok := domain.ParseBookingStatus(s)
	if !ok {
		return "", ErrInvalidStatus
	}
	return status, nil
}
