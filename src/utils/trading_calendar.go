package utils

import (
	"time"

	"github.com/scmhub/calendar"
)

// TradingCalendar answers market-session questions for the watchlist. The
// whole watchlist trades on NYSE, so one calendar covers every ticker.
type TradingCalendar struct {
	Calendar *calendar.Calendar
	Fallback bool
	Timezone *time.Location
}

// -----------------------------------------------------------------------------

// NewTradingCalendar loads the NYSE calendar (MIC xnys). When the calendar
// library cannot provide it, a simple Mon-Fri 09:30-16:00 New York fallback
// is used instead.
func NewTradingCalendar() *TradingCalendar {
	cal := calendar.GetCalendar("xnys")
	if cal == nil {
		nyLoc, _ := time.LoadLocation("America/New_York")
		if nyLoc == nil {
			nyLoc = time.UTC // Worst case
		}
		return &TradingCalendar{Fallback: true, Timezone: nyLoc}
	}

	return &TradingCalendar{Calendar: cal, Fallback: false, Timezone: cal.Loc}
}

// -----------------------------------------------------------------------------

func (tc *TradingCalendar) IsTradingDay(date time.Time) bool {
	if tc.Timezone != nil {
		date = date.In(tc.Timezone)
	}

	if tc.Fallback {
		// Simple fallback: Mon-Fri
		weekday := date.Weekday()
		return weekday != time.Saturday && weekday != time.Sunday
	}
	return tc.Calendar.IsBusinessDay(date)
}

// -----------------------------------------------------------------------------

// IsOpenNow checks whether the market session is open at time t.
func (tc *TradingCalendar) IsOpenNow(t time.Time) bool {
	if tc.Timezone != nil {
		t = t.In(tc.Timezone)
	}

	if tc.Fallback {
		if !tc.IsTradingDay(t) {
			return false
		}

		hour := t.Hour()
		minute := t.Minute()

		// 9:30 - 16:00 NY Time
		if (hour > 9 || (hour == 9 && minute >= 30)) && hour < 16 {
			return true
		}
		return false
	}

	return tc.Calendar.IsOpen(t)
}

// -----------------------------------------------------------------------------

// PreviousTradingDay returns the most recent trading day at or before t,
// as a YYYY-MM-DD string. Used by the mock data set so mock records always
// carry a plausible latest trading day.
func (tc *TradingCalendar) PreviousTradingDay(t time.Time) string {
	if tc.Timezone != nil {
		t = t.In(tc.Timezone)
	}

	for i := 0; i < 14; i++ {
		if tc.IsTradingDay(t) {
			return t.Format("2006-01-02")
		}
		t = t.AddDate(0, 0, -1)
	}
	// Two weeks without a session should not happen; fall back to t itself.
	return t.Format("2006-01-02")
}

// -----------------------------------------------------------------------------

// RecentTradingDays returns the n most recent trading days ending at or
// before t, ascending by date.
func (tc *TradingCalendar) RecentTradingDays(t time.Time, n int) []string {
	if tc.Timezone != nil {
		t = t.In(tc.Timezone)
	}

	days := make([]string, 0, n)
	for len(days) < n {
		if tc.IsTradingDay(t) {
			days = append(days, t.Format("2006-01-02"))
		}
		t = t.AddDate(0, 0, -1)
	}

	// Collected newest-first; reverse to ascending.
	for i, j := 0, len(days)-1; i < j; i, j = i+1, j-1 {
		days[i], days[j] = days[j], days[i]
	}
	return days
}
