package models

import (
	"time"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
)

// Request модели

// CreateRestaurantRequest запрос на создание ресторана
// Создатель автоматически становится сотрудником
type CreateRestaurantRequest struct {
	UserID     int64   `json:"userId"`
	Name       string  `json:"name" validate:"required,max=200"`
	WorkStarts string  `json:"workStarts" validate:"required"` // "10:00"
	WorkEnds   string  `json:"workEnds" validate:"required"`   // "23:00" или "02:00" для ночной смены
	StaffIDs   []int64 `json:"staffIds,omitempty" validate:"dive,gt=0"`
}

// UpdateWorkHoursRequest запрос на изменение рабочих часов
type UpdateWorkHoursRequest struct {
	UserID     int64  `json:"userId"`
	WorkStarts string `json:"workStarts" validate:"required"`
	WorkEnds   string `json:"workEnds" validate:"required"`
}

// CreateTableRequest запрос на добавление стола
type CreateTableRequest struct {
	UserID int64  `json:"userId"`
	Number string `json:"number" validate:"required,max=20"`
	Floor  int    `json:"floor" validate:"gte=0"`
	Seats  int    `json:"seats" validate:"gte=1,lte=50"`
}

// Response модели

// RestaurantResponse ответ с данными ресторана
type RestaurantResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	WorkStarts string    `json:"workStarts"`
	WorkEnds   string    `json:"workEnds"`
	Overnight  bool      `json:"overnight"`
	StaffIDs   []int64   `json:"staffIds"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TableResponse ответ с данными стола
type TableResponse struct {
	ID           int64  `json:"id"`
	RestaurantID int64  `json:"restaurantId"`
	Number       string `json:"number"`
	Floor        int    `json:"floor"`
	Seats        int    `json:"seats"`
}

// TableListResponse ответ со списком столов
type TableListResponse struct {
	Tables []TableResponse `json:"tables"`
	Total  int             `json:"total"`
}

// FromDomainRestaurant конвертирует domain ресторан в ответ
func FromDomainRestaurant(r *domain.Restaurant) *RestaurantResponse {
	staff := r.StaffIDs
	if staff == nil {
		staff = []int64{}
	}
	return &RestaurantResponse{
		ID:         r.ID,
		Name:       r.Name,
		WorkStarts: r.WorkStarts.String(),
		WorkEnds:   r.WorkEnds.String(),
		Overnight:  r.Hours().IsOvernight(),
		StaffIDs:   staff,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// FromDomainTable конвертирует domain стол в ответ
func FromDomainTable(t *domain.Table) *TableResponse {
	return &TableResponse{
		ID:           t.ID,
		RestaurantID: t.RestaurantID,
		Number:       t.Number,
		Floor:        t.Floor,
		Seats:        t.Seats,
	}
}

// FromDomainTableList конвертирует список столов
func FromDomainTableList(tables []*domain.Table) *TableListResponse {
	items := make([]TableResponse, 0, len(tables))
	for _, t := range tables {
		items = append(items, *FromDomainTable(t))
	}
	return &TableListResponse{Tables: items, Total: len(items)}
}
