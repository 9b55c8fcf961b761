package domain

// Default booking policy values
const (
	DefaultSlotIntervalMinutes    = 30
	DefaultMinLeadMinutes         = 15
	DefaultMinGapMinutes          = 60
	DefaultMinStayMinutes         = 60
	DefaultLookAheadMinutes       = 60
	DefaultPendingTTLSeconds      = 180
	DefaultConflictHorizonMinutes = 120
	DefaultExpirySweepSeconds     = 30
)

// Business validation constants
const (
	MinTableSeats        = 1
	MaxTableSeats        = 50
	MaxGuestNameLength   = 100
	MaxRestaurantName    = 200
	MaxDeclineReasonSize = 500
)

// Time format constants
const (
	TimeFormat     = "15:04"               // HH:MM
	DateFormat     = "2006-01-02"          // YYYY-MM-DD
	DateTimeFormat = "2006-01-02T15:04:05" // локальное время ресторана без зоны
)

// ExpiredDeclineReason причина автоматического отклонения заявки
const ExpiredDeclineReason = "заявка не была обработана вовремя"

// SlotBlockingStatuses статусы, занимающие стол при расчете слотов
// Pending добавляется политикой PendingBlocksSlots
var SlotBlockingStatuses = []BookingStatus{
	StatusConfirmed,
	StatusOccupied,
}

// ActiveStatuses статусы, участвующие в классификации столов
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusOccupied,
}
