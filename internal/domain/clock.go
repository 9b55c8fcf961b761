package domain

import "time"

// WallClock переводит момент времени в локальное время ресторана, помеченное как UTC
// Так хранится DateTime бронирований (timestamp without time zone)
func WallClock(t time.Time, loc *time.Location) time.Time {
	if loc != nil {
		t = t.In(loc)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// DateOnly отбрасывает время суток
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
