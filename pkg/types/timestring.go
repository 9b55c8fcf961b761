package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
)

// ErrInvalidTimeString возвращается, когда строка не соответствует формату HH:MM
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString время суток в формате "HH:MM" (например, "09:30")
// Нулевое значение (пустая строка) означает, что время не указано
type TimeString string

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := ParseMinutes(s); err != nil {
		return "", err
	}
	return TimeString(s), nil
}

// NewTimeString создает TimeString из времени суток (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return NewTimeStringFromMinutes(t.Hour()*minutesPerHour + t.Minute())
}

// NewTimeStringFromMinutes создает TimeString из количества минут от полуночи
// Значения за пределами суток заворачиваются по модулю 24 часов ("25:00" -> "01:00")
func NewTimeStringFromMinutes(minutes int) TimeString {
	minutes %= minutesPerDay
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/minutesPerHour, minutes%minutesPerHour))
}

// ParseMinutes разбирает строку "HH:MM" в количество минут от полуночи [0, 1439]
func ParseMinutes(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	digits := [4]byte{s[0], s[1], s[3], s[4]}
	for _, d := range digits {
		if d < '0' || d > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
	}

	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	minutes := int(s[3]-'0')*10 + int(s[4]-'0')
	if hours > 23 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidTimeString, s)
	}

	return hours*minutesPerHour + minutes, nil
}

// Minutes возвращает количество минут от полуночи
// Для невалидного значения возвращает 0: валидация выполняется при создании
func (t TimeString) Minutes() int {
	m, err := ParseMinutes(string(t))
	if err != nil {
		return 0
	}
	return m
}

// Validate проверяет формат времени
func (t TimeString) Validate() error {
	_, err := ParseMinutes(string(t))
	return err
}

// IsZero возвращает true, если время не указано
func (t TimeString) IsZero() bool {
	return t == ""
}

// IsBefore возвращает true, если t раньше other в пределах одних суток
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter возвращает true, если t позже other в пределах одних суток
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// AddMinutes возвращает время, сдвинутое на n минут, с переходом через полночь
func (t TimeString) AddMinutes(n int) TimeString {
	return NewTimeStringFromMinutes(t.Minutes() + n)
}

// String реализует fmt.Stringer
func (t TimeString) String() string {
	return string(t)
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

// Scan реализует sql.Scanner
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		return t.set(v)
	case []byte:
		return t.set(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeString, src)
	}
}

func (t *TimeString) set(s string) error {
	// Колонка типа TIME возвращается как "HH:MM:SS"
	if len(s) == 8 && s[5] == ':' {
		s = s[:5]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
