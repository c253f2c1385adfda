package model

import (
	"time"

	"github.com/Softileo/schedule-saas/internal/timeutil"
)

// MonthContext is the derived calendar shape of one scheduling run:
// total days, weekday partitions, the monthly working-hours norm, and
// which Sundays are workable.
type MonthContext struct {
	Year               int
	Month              time.Month
	TotalDays          int
	Weekdays           []int // Mon-Fri day numbers
	Saturdays          []int
	Sundays            []int
	MonthlyNormMinutes int

	activeTradingSundays map[int]struct{} // day-of-month -> active
	enableTradingSundays bool
}

// NewMonthContext builds the calendar partition for year/month.
// monthlyNormMinutes, if non-nil, overrides the computed default of
// 8h x |weekdays|. tradingSundays entries outside the month are ignored.
func NewMonthContext(year int, month time.Month, monthlyNormMinutes *int, tradingSundays []TradingSunday, enableTradingSundays bool) *MonthContext {
	mc := &MonthContext{
		Year:                 year,
		Month:                month,
		activeTradingSundays: make(map[int]struct{}),
		enableTradingSundays: enableTradingSundays,
	}
	mc.TotalDays = daysIn(year, month)

	for d := 1; d <= mc.TotalDays; d++ {
		switch mc.WeekdayOf(d) {
		case timeutil.Saturday:
			mc.Saturdays = append(mc.Saturdays, d)
		case timeutil.Sunday:
			mc.Sundays = append(mc.Sundays, d)
		default:
			mc.Weekdays = append(mc.Weekdays, d)
		}
	}

	if monthlyNormMinutes != nil {
		mc.MonthlyNormMinutes = *monthlyNormMinutes
	} else {
		mc.MonthlyNormMinutes = 8 * 60 * len(mc.Weekdays)
	}

	for _, ts := range tradingSundays {
		if !ts.Active || ts.Date.Year() != year || ts.Date.Month() != month {
			continue
		}
		mc.activeTradingSundays[ts.Date.Day()] = struct{}{}
	}

	return mc
}

func daysIn(year int, month time.Month) int {
	firstOfNext := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
	lastOfThis := firstOfNext.AddDate(0, 0, -1)
	return lastOfThis.Day()
}

// Date returns the calendar date for day-of-month d.
func (mc *MonthContext) Date(d int) time.Time {
	return time.Date(mc.Year, mc.Month, d, 0, 0, 0, 0, time.UTC)
}

// WeekdayOf returns the Mon=0..Sun=6 index of day-of-month d.
func (mc *MonthContext) WeekdayOf(d int) timeutil.Weekday {
	return timeutil.FromTime(mc.Date(d))
}

// IsActiveTradingSunday reports whether day d is a Sunday explicitly
// marked active in the input, independent of the organization-wide
// enable_trading_sundays flag.
func (mc *MonthContext) IsActiveTradingSunday(d int) bool {
	_, ok := mc.activeTradingSundays[d]
	return ok
}

// WorkableDay reports whether day d is schedulable: any Mon-Sat day, or
// a Sunday that is both organization-enabled and explicitly active.
func (mc *MonthContext) WorkableDay(d int) bool {
	w := mc.WeekdayOf(d)
	if w != timeutil.Sunday {
		return true
	}
	return mc.enableTradingSundays && mc.IsActiveTradingSunday(d)
}

// AllDays returns every day-of-month from 1 to TotalDays.
func (mc *MonthContext) AllDays() []int {
	days := make([]int, mc.TotalDays)
	for i := range days {
		days[i] = i + 1
	}
	return days
}

// WorkableDays returns every workable day-of-month in ascending order.
func (mc *MonthContext) WorkableDays() []int {
	var days []int
	for d := 1; d <= mc.TotalDays; d++ {
		if mc.WorkableDay(d) {
			days = append(days, d)
		}
	}
	return days
}
