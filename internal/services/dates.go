package services

import (
	"fmt"
	"time"
)

const dayFormat = "2006-01-02"

// DateOnly truncates a timestamp to midnight while keeping its location.
// All cycle arithmetic is date-only; time-of-day never participates.
func DateOnly(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, value.Location())
}

func FormatDay(value time.Time) string {
	return value.Format(dayFormat)
}

func ParseDay(value string) (time.Time, error) {
	return time.Parse(dayFormat, value)
}

func SameDay(a time.Time, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}

// DaysBetween returns the whole-day difference to − from.
func DaysBetween(from time.Time, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)).Hours() / 24)
}

// DayRangeFrom returns days consecutive dates starting at start, inclusive.
func DayRangeFrom(start time.Time, days int) []time.Time {
	if days <= 0 {
		return nil
	}
	dates := make([]time.Time, 0, days)
	day := DateOnly(start)
	for i := 0; i < days; i++ {
		dates = append(dates, day.AddDate(0, 0, i))
	}
	return dates
}

// DayRangeBetween returns every date from start through end, inclusive.
func DayRangeBetween(start time.Time, end time.Time) []time.Time {
	startDay := DateOnly(start)
	endDay := DateOnly(end)
	if endDay.Before(startDay) {
		return nil
	}
	dates := make([]time.Time, 0, DaysBetween(startDay, endDay)+1)
	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		dates = append(dates, day)
	}
	return dates
}

// MonthKey renders the "YYYY-M" uniqueness key for a start date. The month
// number is not zero padded.
func MonthKey(value time.Time) string {
	return fmt.Sprintf("%d-%d", value.Year(), int(value.Month()))
}

func SameCalendarMonth(a time.Time, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
