package create_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	"github.com/m04kA/SMC-TableBookingService/internal/schedule"
	createBooking "github.com/m04kA/SMC-TableBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-TableBookingService/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid booking date")
	errInvalidTime = errors.New("invalid start time")
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RestaurantID        int64  `json:"restaurantId"`
	TableID             int64  `json:"tableId"`
	GuestName           string `json:"guestName"`
	GuestPhone          string `json:"guestPhone"`
	GuestCount          int    `json:"guestCount"`
	Date                string `json:"date"`      // "2025-10-15"
	StartTime           string `json:"startTime"` // "19:00"
	AcknowledgeConflict bool   `json:"acknowledgeConflict,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID               int64  `json:"id"`
	RestaurantID     int64  `json:"restaurantId"`
	TableID          int64  `json:"tableId"`
	GuestName        string `json:"guestName"`
	GuestPhone       string `json:"guestPhone"`
	GuestCount       int    `json:"guestCount"`
	DateTime         string `json:"dateTime"`
	Status           string `json:"status"`
	ExpiresInSeconds int    `json:"expiresInSeconds"`
	Countdown        string `json:"countdown"` // "3:00"
	CreatedAt        string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты и времени)
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
	}

	return &createBooking.Request{
		RestaurantID:        r.RestaurantID,
		TableID:             r.TableID,
		GuestName:           r.GuestName,
		GuestPhone:          r.GuestPhone,
		GuestCount:          r.GuestCount,
		Date:                date,
		StartTime:           startTime,
		AcknowledgeConflict: r.AcknowledgeConflict,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:               resp.ID,
		RestaurantID:     resp.RestaurantID,
		TableID:          resp.TableID,
		GuestName:        resp.GuestName,
		GuestPhone:       resp.GuestPhone,
		GuestCount:       resp.GuestCount,
		DateTime:         resp.DateTime.Format(domain.DateTimeFormat),
		Status:           resp.Status,
		ExpiresInSeconds: resp.PendingExpiresIn,
		Countdown:        schedule.FormatCountdown(resp.PendingExpiresIn),
		CreatedAt:        resp.CreatedAt.Format(domain.DateTimeFormat),
	}
}
