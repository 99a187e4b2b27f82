package week

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 15, 4, 5, 0, time.UTC)
}

func TestCurrentThursday(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want string
	}{
		{"Sunday jumps to the Thursday of the new week", date(2024, time.June, 9), "2024-06-13"},
		{"Monday", date(2024, time.June, 10), "2024-06-13"},
		{"Tuesday", date(2024, time.June, 11), "2024-06-13"},
		{"Wednesday", date(2024, time.June, 12), "2024-06-13"},
		{"Thursday stays on today", date(2024, time.June, 13), "2024-06-13"},
		{"Friday rolls to next week", date(2024, time.June, 14), "2024-06-20"},
		{"Saturday rolls to next week", date(2024, time.June, 15), "2024-06-20"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CurrentThursday(tc.now)
			assert.Equal(t, tc.want, Key(got), "Expected Thursday key to match")
			assert.Equal(t, 0, got.Hour(), "Expected midnight truncation")
			assert.Equal(t, 0, got.Minute(), "Expected midnight truncation")
		})
	}
}

func TestCurrentThursdayStableWithinDay(t *testing.T) {
	morning := time.Date(2024, time.June, 11, 0, 0, 1, 0, time.UTC)
	night := time.Date(2024, time.June, 11, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, Key(CurrentThursday(morning)), Key(CurrentThursday(night)),
		"Key must not change within one calendar day")
}

func TestCurrentKey(t *testing.T) {
	assert.Equal(t, "2024-06-13", CurrentKey(date(2024, time.June, 12)))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Jeudi 13 juin", Label(time.Date(2024, time.June, 13, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Jeudi 1 août", Label(time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC)))
}
