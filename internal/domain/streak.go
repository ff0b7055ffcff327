package domain

import (
	"fmt"
	"slices"
	"time"
)

// DayLayout is the calendar-day format used across the API.
const DayLayout = "2006-01-02"

// calendarDay truncates t to its calendar date in loc. The result is midnight
// UTC so that AddDate and Sub never cross a DST transition.
func calendarDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ComputeStreak returns the number of consecutive local calendar days with at
// least one entry, counting backwards from the most recent entry.
func ComputeStreak(entries []WeightEntry) int {
	return ComputeStreakIn(entries, time.Local)
}

// ComputeStreakIn is ComputeStreak with calendar days taken in loc.
//
// The most recent entry always counts as day one; whether the streak is still
// current relative to today is left to the caller (see DaysSince). Several
// entries on the same day count once, and the first missing day ends the walk.
// The input slice is neither reordered nor modified.
func ComputeStreakIn(entries []WeightEntry, loc *time.Location) int {
	if len(entries) == 0 {
		return 0
	}

	days := make([]time.Time, len(entries))
	for i, e := range entries {
		days[i] = calendarDay(e.Date, loc)
	}
	slices.SortFunc(days, func(a, b time.Time) int { return b.Compare(a) })

	streak := 1
	cursor := days[0]
	for _, d := range days[1:] {
		prev := cursor.AddDate(0, 0, -1)
		switch {
		case d.Equal(prev):
			streak++
			cursor = prev
		case d.Equal(cursor):
			// same day as the cursor
		default:
			return streak
		}
	}
	return streak
}

// DaysSince returns the number of calendar days in loc between latest and
// now. It is 0 when latest falls on today and negative for future dates.
func DaysSince(latest, now time.Time, loc *time.Location) int {
	diff := calendarDay(now, loc).Sub(calendarDay(latest, loc))
	return int(diff / (24 * time.Hour))
}

// StreakMessage returns the encouragement line shown next to a streak.
func StreakMessage(streak int) string {
	switch {
	case streak <= 0:
		return "Start tracking today to build your streak!"
	case streak == 1:
		return "You've tracked for 1 day. Great start!"
	case streak < 5:
		return fmt.Sprintf("You've tracked for %d days in a row. Keep it up!", streak)
	case streak < 10:
		return fmt.Sprintf("Amazing! %d day streak. You're building a habit!", streak)
	default:
		return fmt.Sprintf("Incredible %d day streak! You're a consistency champion!", streak)
	}
}

// StreakBadge returns the badge shown for a streak length.
func StreakBadge(streak int) string {
	switch {
	case streak <= 0:
		return "🏁"
	case streak < 3:
		return "🔥"
	case streak < 7:
		return "🔥🔥"
	case streak < 14:
		return "🔥🔥🔥"
	default:
		return "🏆"
	}
}

// ParseDay parses a YYYY-MM-DD string as noon on that day in loc. Noon keeps
// the entry on the same calendar day for any nearby offset.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	d, err := time.ParseInLocation(DayLayout, s, loc)
	if err != nil {
		return time.Time{}, err
	}
	return d.Add(12 * time.Hour), nil
}
