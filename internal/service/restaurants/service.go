package restaurants

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	restaurantRepo "github.com/m04kA/SMC-TableBookingService/internal/infra/storage/restaurant"
	"github.com/m04kA/SMC-TableBookingService/internal/service/restaurants/models"
	"github.com/m04kA/SMC-TableBookingService/pkg/types"
)

// Service сервис настройки ресторанов и столов
type Service struct {
	restaurantRepo RestaurantRepository
	validate       *validator.Validate
	logger         Logger
}

// NewService создает новый экземпляр сервиса ресторанов
func NewService(restaurantRepo RestaurantRepository, logger Logger) *Service {
	return &Service{
		restaurantRepo: restaurantRepo,
		validate:       validator.New(),
		logger:         logger,
	}
}

// Create создает ресторан
// Рабочие часы проверяются при создании: далее расчет слотов считает их корректными
func (s *Service) Create(ctx context.Context, req *models.CreateRestaurantRequest) (*models.RestaurantResponse, error) {
	s.logger.Info("Create: creating restaurant name=%q, hours=%s-%s by user=%d",
		req.Name, req.WorkStarts, req.WorkEnds, req.UserID)

	// 1. Валидируем входные данные
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validateStruct(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	hours, err := parseWorkHours(req.WorkStarts, req.WorkEnds)
	if err != nil {
		s.logger.Warn("Create: invalid work hours %s-%s: %v", req.WorkStarts, req.WorkEnds, err)
		return nil, err
	}

	// 2. Создатель всегда входит в число сотрудников
	restaurant := &domain.Restaurant{
		Name:       req.Name,
		WorkStarts: hours.Starts,
		WorkEnds:   hours.Ends,
		StaffIDs:   withStaff(req.StaffIDs, req.UserID),
	}

	// 3. Сохраняем ресторан
	created, err := s.restaurantRepo.Create(ctx, restaurant)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: restaurant id=%d created", created.ID)
	return models.FromDomainRestaurant(created), nil
}

// GetByID получает ресторан по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RestaurantResponse, error) {
	restaurant, err := s.getRestaurant(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainRestaurant(restaurant), nil
}

// UpdateWorkHours изменяет рабочие часы ресторана
// Доступно только сотрудникам ресторана
func (s *Service) UpdateWorkHours(ctx context.Context, restaurantID int64, req *models.UpdateWorkHoursRequest) (*models.RestaurantResponse, error) {
	s.logger.Info("UpdateWorkHours: restaurant=%d, hours=%s-%s by user=%d",
		restaurantID, req.WorkStarts, req.WorkEnds, req.UserID)

	if err := s.validateStruct(req); err != nil {
		s.logger.Warn("UpdateWorkHours: validation failed: %v", err)
		return nil, err
	}

	hours, err := parseWorkHours(req.WorkStarts, req.WorkEnds)
	if err != nil {
		s.logger.Warn("UpdateWorkHours: invalid work hours %s-%s: %v", req.WorkStarts, req.WorkEnds, err)
		return nil, err
	}

	restaurant, err := s.getRestaurant(ctx, "UpdateWorkHours", restaurantID)
	if err != nil {
		return nil, err
	}
	if !restaurant.IsStaff(req.UserID) {
		s.logger.Warn("UpdateWorkHours: user=%d is not staff of restaurant=%d", req.UserID, restaurantID)
		return nil, ErrAccessDenied
	}

	if err := s.restaurantRepo.UpdateWorkHours(ctx, restaurantID, hours); err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("UpdateWorkHours: repository error for restaurant=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: UpdateWorkHours - repository error: %v", ErrInternal, err)
	}

	restaurant.WorkStarts = hours.Starts
	restaurant.WorkEnds = hours.Ends

	s.logger.Info("UpdateWorkHours: restaurant=%d now works %s-%s", restaurantID, hours.Starts, hours.Ends)
	return models.FromDomainRestaurant(restaurant), nil
}

// CreateTable добавляет стол в ресторан
// Доступно только сотрудникам ресторана
func (s *Service) CreateTable(ctx context.Context, restaurantID int64, req *models.CreateTableRequest) (*models.TableResponse, error) {
	s.logger.Info("CreateTable: restaurant=%d, number=%q, seats=%d by user=%d",
		restaurantID, req.Number, req.Seats, req.UserID)

	req.Number = strings.TrimSpace(req.Number)
	if err := s.validateStruct(req); err != nil {
		s.logger.Warn("CreateTable: validation failed: %v", err)
		return nil, err
	}

	restaurant, err := s.getRestaurant(ctx, "CreateTable", restaurantID)
	if err != nil {
		return nil, err
	}
	if !restaurant.IsStaff(req.UserID) {
		s.logger.Warn("CreateTable: user=%d is not staff of restaurant=%d", req.UserID, restaurantID)
		return nil, ErrAccessDenied
	}

	table, err := s.restaurantRepo.CreateTable(ctx, &domain.Table{
		RestaurantID: restaurantID,
		Number:       req.Number,
		Floor:        req.Floor,
		Seats:        req.Seats,
	})
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrDuplicateTable) {
			s.logger.Warn("CreateTable: table %q already exists in restaurant=%d", req.Number, restaurantID)
			return nil, ErrTableAlreadyExists
		}
		s.logger.Error("CreateTable: repository error for restaurant=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: CreateTable - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateTable: table id=%d created in restaurant=%d", table.ID, restaurantID)
	return models.FromDomainTable(table), nil
}

// ListTables получает столы ресторана
func (s *Service) ListTables(ctx context.Context, restaurantID int64) (*models.TableListResponse, error) {
	if _, err := s.getRestaurant(ctx, "ListTables", restaurantID); err != nil {
		return nil, err
	}

	tables, err := s.restaurantRepo.ListTables(ctx, restaurantID)
	if err != nil {
		s.logger.Error("ListTables: repository error for restaurant=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: ListTables - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTableList(tables), nil
}

// Вспомогательные методы

func (s *Service) getRestaurant(ctx context.Context, op string, id int64) (*domain.Restaurant, error) {
	restaurant, err := s.restaurantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("%s: restaurant id=%d not found", op, id)
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("%s: repository error for restaurant id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return restaurant, nil
}

func (s *Service) validateStruct(v interface{}) error {
	if err := s.validate.Struct(v); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return fmt.Errorf("%w: field %s failed on %q", ErrInvalidInput, fieldErrs[0].Field(), fieldErrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// parseWorkHours проверяет обе границы смены в формате "HH:MM"
func parseWorkHours(starts, ends string) (domain.WorkHours, error) {
	startTime, err := types.NewTimeStringFromString(starts)
	if err != nil {
		return domain.WorkHours{}, fmt.Errorf("%w: workStarts: %v", ErrInvalidWorkHours, err)
	}
	endTime, err := types.NewTimeStringFromString(ends)
	if err != nil {
		return domain.WorkHours{}, fmt.Errorf("%w: workEnds: %v", ErrInvalidWorkHours, err)
	}
	return domain.WorkHours{Starts: startTime, Ends: endTime}, nil
}

func withStaff(staffIDs []int64, userID int64) []int64 {
	result := make([]int64, 0, len(staffIDs)+1)
	seen := make(map[int64]struct{}, len(staffIDs)+1)
	for _, id := range append([]int64{userID}, staffIDs...) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
