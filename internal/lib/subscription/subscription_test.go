package subscription

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEndDate_MonthDuration(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		want  time.Time
	}{
		{
			name:  "same day next month",
			start: date(2024, time.March, 10),
			want:  date(2024, time.April, 10),
		},
		{
			name:  "january 31 clamps to february 29 in leap year",
			start: date(2024, time.January, 31),
			want:  date(2024, time.February, 29),
		},
		{
			name:  "january 31 clamps to february 28 in common year",
			start: date(2023, time.January, 31),
			want:  date(2023, time.February, 28),
		},
		{
			name:  "january 30 clamps to end of february",
			start: date(2024, time.January, 30),
			want:  date(2024, time.February, 29),
		},
		{
			name:  "march 31 clamps to april 30",
			start: date(2024, time.March, 31),
			want:  date(2024, time.April, 30),
		},
		{
			name:  "december wraps into next year",
			start: date(2024, time.December, 15),
			want:  date(2025, time.January, 15),
		},
		{
			name:  "december 31 keeps day in january",
			start: date(2024, time.December, 31),
			want:  date(2025, time.January, 31),
		},
		{
			name:  "first day of month",
			start: date(2024, time.February, 1),
			want:  date(2024, time.March, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EndDate(tt.start, MonthDuration)
			if !got.Equal(tt.want) {
				t.Errorf("EndDate(%v, 30) = %v, want %v", tt.start, got, tt.want)
			}
		})
	}
}

func TestEndDate_DayDuration(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		duration int
		want     time.Time
	}{
		{
			name:     "week starting january 15 ends january 21",
			start:    date(2024, time.January, 15),
			duration: 7,
			want:     date(2024, time.January, 21),
		},
		{
			name:     "single day ends same day",
			start:    date(2024, time.June, 3),
			duration: 1,
			want:     date(2024, time.June, 3),
		},
		{
			name:     "two weeks crossing month boundary",
			start:    date(2024, time.January, 25),
			duration: 14,
			want:     date(2024, time.February, 7),
		},
		{
			name:     "15 days is not treated as month",
			start:    date(2024, time.January, 31),
			duration: 15,
			want:     date(2024, time.February, 14),
		},
		{
			name:     "crossing year boundary",
			start:    date(2024, time.December, 30),
			duration: 7,
			want:     date(2025, time.January, 5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EndDate(tt.start, tt.duration)
			if !got.Equal(tt.want) {
				t.Errorf("EndDate(%v, %d) = %v, want %v", tt.start, tt.duration, got, tt.want)
			}
		})
	}
}

func TestStatus(t *testing.T) {
	today := date(2024, time.March, 10)

	tests := []struct {
		name string
		end  time.Time
		want string
	}{
		{
			name: "end before today is expired",
			end:  date(2024, time.March, 9),
			want: StatusExpired,
		},
		{
			name: "end equals today is due today",
			end:  date(2024, time.March, 10),
			want: StatusDueToday,
		},
		{
			name: "end after today is active",
			end:  date(2024, time.March, 11),
			want: StatusActive,
		},
		{
			name: "end long before today is expired",
			end:  date(2023, time.March, 10),
			want: StatusExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Status(tt.end, today); got != tt.want {
				t.Errorf("Status(%v, %v) = %q, want %q", tt.end, today, got, tt.want)
			}
		})
	}
}

// Статус не должен учитывать время суток: абонемент, истекающий
// сегодня, остаётся DUE_TODAY даже поздно вечером.
func TestStatus_IgnoresTimeOfDay(t *testing.T) {
	end := date(2024, time.March, 10)
	today := time.Date(2024, time.March, 10, 23, 59, 59, 0, time.UTC)

	if got := Status(end, today); got != StatusDueToday {
		t.Errorf("Status() = %q, want %q", got, StatusDueToday)
	}
}

// Статус монотонен по текущей дате: с её ростом абонемент не может
// вернуться из EXPIRED в ACTIVE.
func TestStatus_MonotonicOverTime(t *testing.T) {
	end := date(2024, time.June, 15)
	rank := map[string]int{StatusActive: 0, StatusDueToday: 1, StatusExpired: 2}

	prev := StatusActive
	for today := end.AddDate(0, 0, -3); today.Before(end.AddDate(0, 0, 4)); today = today.AddDate(0, 0, 1) {
		got := Status(end, today)
		if rank[got] < rank[prev] {
			t.Fatalf("status went backwards: %q after %q at %v", got, prev, today)
		}
		prev = got
	}
}
