// Package schedule содержит расчет слотов бронирования, классификацию столов
// и правила жизненного цикла бронирования. Все функции чистые: результат
// зависит только от аргументов, поэтому их можно пересчитывать на каждый запрос.
package schedule

import (
	"time"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	"github.com/m04kA/SMC-TableBookingService/pkg/types"
)

const minutesPerDay = 24 * 60

// ParseTimeToMinutes разбирает "HH:MM" в минуты от полуночи [0, 1439]
func ParseTimeToMinutes(s string) (int, error) {
	return types.ParseMinutes(s)
}

// IsWithinWorkHours проверяет, попадает ли время суток instant в смену
// Смена с концом не позже начала считается ночной: [starts, 24:00) + [00:00, ends)
func IsWithinWorkHours(instant time.Time, hours domain.WorkHours) bool {
	startMins := hours.Starts.Minutes()
	endMins := hours.Ends.Minutes()
	timeMins := instant.Hour()*60 + instant.Minute()

	if endMins <= startMins {
		return timeMins >= startMins || timeMins < endMins
	}
	return timeMins >= startMins && timeMins < endMins
}

// GenerateTimeSlots возвращает сетку начал слотов от начала смены до конца (не включительно)
// с шагом intervalMinutes; для ночной смены метки заворачиваются через полночь
func GenerateTimeSlots(hours domain.WorkHours, intervalMinutes int) []types.TimeString {
	if intervalMinutes <= 0 {
		intervalMinutes = domain.DefaultSlotIntervalMinutes
	}

	startMins, endMins := shiftBounds(hours)

	slots := make([]types.TimeString, 0, (endMins-startMins)/intervalMinutes+1)
	for m := startMins; m < endMins; m += intervalMinutes {
		slots = append(slots, types.NewTimeStringFromMinutes(m))
	}
	return slots
}

// ShiftWindow возвращает смену [start, end) в абсолютном времени для календарной даты date
func ShiftWindow(date time.Time, hours domain.WorkHours) (time.Time, time.Time) {
	startMins, endMins := shiftBounds(hours)
	day := startOfDay(date)
	return day.Add(time.Duration(startMins) * time.Minute), day.Add(time.Duration(endMins) * time.Minute)
}

// SlotDateTime переводит слот смены, начавшейся в date, в абсолютное время
// Слот ночной смены раньше начала смены относится к следующему календарному дню
func SlotDateTime(date time.Time, hours domain.WorkHours, slot types.TimeString) time.Time {
	return startOfDay(date).Add(time.Duration(slotOffset(slot.Minutes(), hours)) * time.Minute)
}

// shiftBounds возвращает начало и конец смены в минутах от полуночи даты начала смены
// Для ночной смены конец больше 1440
func shiftBounds(hours domain.WorkHours) (int, int) {
	startMins := hours.Starts.Minutes()
	endMins := hours.Ends.Minutes()
	if endMins <= startMins {
		endMins += minutesPerDay
	}
	return startMins, endMins
}

// slotOffset линеаризует время суток относительно полуночи даты начала смены
func slotOffset(timeMins int, hours domain.WorkHours) int {
	if timeMins < hours.Starts.Minutes() {
		return timeMins + minutesPerDay
	}
	return timeMins
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
