package services

import (
	"testing"
	"time"
)

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		from     string
		to       string
		expected int
	}{
		{"2023-11-20", "2023-12-10", 20},
		{"2023-11-20", "2023-11-20", 0},
		{"2023-12-01", "2023-11-30", -1},
		{"2023-12-28", "2024-01-04", 7},
	}
	for _, c := range cases {
		if got := DaysBetween(mustParseDay(c.from), mustParseDay(c.to)); got != c.expected {
			t.Fatalf("DaysBetween(%s, %s): expected %d, got %d", c.from, c.to, c.expected, got)
		}
	}
}

func TestDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	from := time.Date(2023, 11, 20, 23, 50, 0, 0, time.UTC)
	to := time.Date(2023, 11, 21, 0, 5, 0, 0, time.UTC)
	if got := DaysBetween(from, to); got != 1 {
		t.Fatalf("expected 1 day, got %d", got)
	}
}

func TestDayRangeFrom(t *testing.T) {
	dates := DayRangeFrom(mustParseDay("2023-11-28"), 5)
	if len(dates) != 5 {
		t.Fatalf("expected 5 dates, got %d", len(dates))
	}
	if FormatDay(dates[0]) != "2023-11-28" {
		t.Fatalf("unexpected first date: %s", FormatDay(dates[0]))
	}
	if FormatDay(dates[4]) != "2023-12-02" {
		t.Fatalf("unexpected last date: %s", FormatDay(dates[4]))
	}

	if got := DayRangeFrom(mustParseDay("2023-11-28"), 0); got != nil {
		t.Fatalf("expected nil range for zero days, got %v", got)
	}
}

func TestDayRangeBetween(t *testing.T) {
	dates := DayRangeBetween(mustParseDay("2023-11-25"), mustParseDay("2023-11-30"))
	if len(dates) != 6 {
		t.Fatalf("expected 6 dates, got %d", len(dates))
	}
	if FormatDay(dates[len(dates)-1]) != "2023-11-30" {
		t.Fatalf("unexpected last date: %s", FormatDay(dates[len(dates)-1]))
	}

	if got := DayRangeBetween(mustParseDay("2023-12-01"), mustParseDay("2023-11-30")); got != nil {
		t.Fatalf("expected nil range for inverted bounds, got %v", got)
	}

	single := DayRangeBetween(mustParseDay("2023-11-25"), mustParseDay("2023-11-25"))
	if len(single) != 1 {
		t.Fatalf("expected single-day range, got %d", len(single))
	}
}

func TestMonthKey(t *testing.T) {
	cases := []struct {
		day      string
		expected string
	}{
		{"2023-11-20", "2023-11"},
		{"2024-03-05", "2024-3"},
		{"2024-01-31", "2024-1"},
	}
	for _, c := range cases {
		if got := MonthKey(mustParseDay(c.day)); got != c.expected {
			t.Fatalf("MonthKey(%s): expected %s, got %s", c.day, c.expected, got)
		}
	}
}

func TestSameCalendarMonth(t *testing.T) {
	if !SameCalendarMonth(mustParseDay("2023-11-01"), mustParseDay("2023-11-30")) {
		t.Fatal("expected same calendar month")
	}
	if SameCalendarMonth(mustParseDay("2023-11-30"), mustParseDay("2023-12-01")) {
		t.Fatal("expected different calendar months")
	}
	if SameCalendarMonth(mustParseDay("2022-11-15"), mustParseDay("2023-11-15")) {
		t.Fatal("expected different years to differ")
	}
}
