package get_restaurant_bookings

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	"github.com/m04kA/SMC-TableBookingService/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос к сервису из опциональных query параметров
func ToServiceRequest(restaurantID, userID int64, tableIDStr, dateStr, statusStr string) (*models.GetRestaurantBookingsRequest, error) {
	req := &models.GetRestaurantBookingsRequest{
		UserID:       userID,
		RestaurantID: restaurantID,
	}

	if tableIDStr != "" {
		tableID, err := strconv.ParseInt(tableIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.TableID = &tableID
	}

	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if statusStr != "" {
		if _, err := models.ToDomainBookingStatus(statusStr); err != nil {
			return nil, err
		}
		req.Status = &statusStr
	}

	return req, nil
}
