// Package week derives the identifier of the current weekly match cycle.
package week

import (
	"fmt"
	"time"
)

// KeyLayout is the canonical wire format of a week key.
const KeyLayout = "2006-01-02"

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// CurrentThursday returns the date of the upcoming (or current) Thursday,
// truncated to midnight in now's location.
//
// The rule is asymmetric on purpose: Sunday always advances 4 days to the
// Thursday of the new week, it is never treated as "3 days after last
// Thursday". Monday through Saturday advance to the next Thursday, with
// Thursday itself staying put.
func CurrentThursday(now time.Time) time.Time {
	day := int(now.Weekday()) // Sunday == 0
	var diff int
	if day == 0 {
		diff = 4
	} else {
		diff = (4 - day + 7) % 7
	}
	d := now.AddDate(0, 0, diff)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())
}

// Key formats a Thursday date as the partition key used across all tables.
func Key(t time.Time) string {
	return t.Format(KeyLayout)
}

// CurrentKey is CurrentThursday composed with Key.
func CurrentKey(now time.Time) string {
	return Key(CurrentThursday(now))
}

// Label renders the match day for display, in French with a leading
// capital, e.g. "Jeudi 13 juin".
func Label(t time.Time) string {
	return fmt.Sprintf("Jeudi %d %s", t.Day(), frenchMonths[int(t.Month())-1])
}
