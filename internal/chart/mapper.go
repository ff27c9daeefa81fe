// Package chart maps calendar dates onto a drawing surface and draws the
// Gantt chart.
//
// Every function here recomputes the date range from the task slice it is
// given. Nothing is cached, so results always match the current tasks.
package chart

import (
	"math"
	"time"

	"github.com/runoshun/gantt/internal/domain"
)

// minSpanDays guards the degenerate range where every task starts and ends
// on the same day.
const minSpanDays = 1

// DateRange returns the earliest start and the latest end among tasks.
func DateRange(tasks []*domain.Task) (minDate, maxDate time.Time, err error) {
	if len(tasks) == 0 {
		return time.Time{}, time.Time{}, domain.ErrNoTasks
	}
	minDate, maxDate = tasks[0].Start, tasks[0].End
	for _, t := range tasks[1:] {
		if t.Start.Before(minDate) {
			minDate = t.Start
		}
		if t.End.After(maxDate) {
			maxDate = t.End
		}
	}
	return minDate, maxDate, nil
}

// spanDays returns the number of days the horizontal axis covers.
func spanDays(minDate, maxDate time.Time) float64 {
	days := domain.DaysBetween(minDate, maxDate)
	if days < minSpanDays {
		days = minSpanDays
	}
	return float64(days)
}

// OffsetForDate returns the x offset of date on a surface of the given width.
// minDate maps to 0 and maxDate maps to width.
func OffsetForDate(date time.Time, tasks []*domain.Task, width float64) float64 {
	minDate, maxDate, err := DateRange(tasks)
	if err != nil {
		return 0
	}
	days := float64(domain.DaysBetween(minDate, date))
	return days / spanDays(minDate, maxDate) * width
}

// DateForOffset is the inverse of OffsetForDate, rounded to the nearest day
// (half away from zero).
func DateForOffset(x float64, tasks []*domain.Task, width float64) time.Time {
	minDate, maxDate, err := DateRange(tasks)
	if err != nil || width <= 0 {
		return time.Time{}
	}
	days := x / width * spanDays(minDate, maxDate)
	return domain.AddDays(minDate, int(math.Round(days)))
}

// DaysPerUnit returns how many days one surface unit represents.
func DaysPerUnit(tasks []*domain.Task, width float64) float64 {
	minDate, maxDate, err := DateRange(tasks)
	if err != nil || width <= 0 {
		return 0
	}
	return spanDays(minDate, maxDate) / width
}

// RoundDays converts a fractional day count into whole days.
func RoundDays(days float64) int {
	return int(math.Round(days))
}
