package occurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amsterdam(t *testing.T, y int, m time.Month, d, hh, mm, ss int) time.Time {
	t.Helper()

	loc, err := ReferenceLocation()
	require.NoError(t, err)

	return time.Date(y, m, d, hh, mm, ss, 0, loc)
}

func TestNextWeekdayOnOrAfter(t *testing.T) {
	tests := []struct {
		name    string
		now     time.Time
		weekday time.Weekday
		want    time.Time
	}{
		{
			name:    "Should move to the next day with the target weekday",
			now:     amsterdam(t, 2023, time.August, 2, 10, 0, 0), // Wednesday
			weekday: time.Thursday,
			want:    amsterdam(t, 2023, time.August, 3, 10, 0, 0),
		},
		{
			name:    "Should advance a full week when already on the target weekday",
			now:     amsterdam(t, 2023, time.August, 3, 10, 0, 0), // Thursday
			weekday: time.Thursday,
			want:    amsterdam(t, 2023, time.August, 10, 10, 0, 0),
		},
		{
			name:    "Should roll over month and year boundaries",
			now:     amsterdam(t, 2023, time.December, 29, 8, 30, 0), // Friday
			weekday: time.Tuesday,
			want:    amsterdam(t, 2024, time.January, 2, 8, 30, 0),
		},
		{
			name:    "Should keep wall clock time across the spring daylight saving change",
			now:     amsterdam(t, 2024, time.March, 29, 10, 0, 0), // Friday, DST starts Sunday 31st
			weekday: time.Tuesday,
			want:    amsterdam(t, 2024, time.April, 2, 10, 0, 0),
		},
		{
			name:    "Should keep wall clock time across the autumn daylight saving change",
			now:     amsterdam(t, 2023, time.October, 27, 10, 0, 0), // Friday, DST ends Sunday 29th
			weekday: time.Tuesday,
			want:    amsterdam(t, 2023, time.October, 31, 10, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextWeekdayOnOrAfter(tt.now, tt.weekday)
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
			assert.Equal(t, tt.weekday, got.Weekday())
			assert.Equal(t, tt.now.Hour(), got.Hour())
		})
	}
}

func TestNextReminderInstant(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "Should pick the coming Tuesday from a Sunday",
			now:  amsterdam(t, 2023, time.July, 30, 12, 12, 12),
			want: amsterdam(t, 2023, time.August, 1, 10, 0, 0),
		},
		{
			name: "Should pick the next week right after the reminder fired",
			now:  amsterdam(t, 2023, time.August, 1, 10, 0, 1),
			want: amsterdam(t, 2023, time.August, 8, 10, 0, 0),
		},
		{
			name: "Should pick the next week at the exact reminder instant",
			now:  amsterdam(t, 2023, time.August, 1, 10, 0, 0),
			want: amsterdam(t, 2023, time.August, 8, 10, 0, 0),
		},
		{
			name: "Should pick the coming Tuesday from a Monday night",
			now:  amsterdam(t, 2023, time.July, 31, 23, 59, 59),
			want: amsterdam(t, 2023, time.August, 1, 10, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextReminderInstant(tt.now)
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
		})
	}
}

func TestNextSessionDate(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "Should announce the Thursday two weeks after the coming Thursday",
			now:  amsterdam(t, 2023, time.August, 2, 10, 0, 0),
			want: amsterdam(t, 2023, time.August, 17, 19, 0, 0),
		},
		{
			name: "Should skip the current Thursday when computed on a Thursday",
			now:  amsterdam(t, 2023, time.August, 3, 8, 0, 0),
			want: amsterdam(t, 2023, time.August, 24, 19, 0, 0),
		},
		{
			name: "Should announce from the reminder instant",
			now:  amsterdam(t, 2023, time.August, 1, 10, 0, 0),
			want: amsterdam(t, 2023, time.August, 17, 19, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextSessionDate(tt.now)
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
		})
	}
}

// Walks a full year hour by hour, including both daylight saving changes.
func TestOccurrenceProperties(t *testing.T) {
	start := amsterdam(t, 2023, time.January, 1, 0, 17, 42)
	end := start.AddDate(1, 0, 0)

	for now := start; now.Before(end); now = now.Add(time.Hour) {
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			next := NextWeekdayOnOrAfter(now, wd)
			require.Equal(t, wd, next.Weekday(), "now %v", now)
			require.True(t, next.After(now), "now %v", now)
		}

		reminder := NextReminderInstant(now)
		require.Equal(t, time.Tuesday, reminder.Weekday(), "now %v", now)
		require.Equal(t, []int{10, 0, 0, 0}, []int{reminder.Hour(), reminder.Minute(), reminder.Second(), reminder.Nanosecond()}, "now %v", now)
		require.True(t, reminder.After(now), "now %v", now)

		again := NextReminderInstant(reminder)
		require.False(t, again.Before(reminder.AddDate(0, 0, 7)), "reminder %v fired again at %v", reminder, again)

		session := NextSessionDate(now)
		require.Equal(t, time.Thursday, session.Weekday(), "now %v", now)
		require.Equal(t, []int{19, 0, 0, 0}, []int{session.Hour(), session.Minute(), session.Second(), session.Nanosecond()}, "now %v", now)
		lead := session.Sub(now)
		if now.Weekday() == time.Thursday {
			// the current Thursday never counts, so the lead is a week longer
			require.GreaterOrEqual(t, lead, 21*24*time.Hour, "now %v", now)
			require.Less(t, lead, 22*24*time.Hour, "now %v", now)
		} else {
			require.GreaterOrEqual(t, lead, 14*24*time.Hour, "now %v", now)
			require.Less(t, lead, 21*24*time.Hour, "now %v", now)
		}
	}
}

func TestClock_Now(t *testing.T) {
	loc, err := ReferenceLocation()
	require.NoError(t, err)

	now := NewClock(loc).Now()

	assert.Equal(t, loc, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Second)
}
