package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func span(startHour, endHour int) Interval {
	day := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	return Interval{
		Start: day.Add(time.Duration(startHour) * time.Hour),
		End:   day.Add(time.Duration(endHour) * time.Hour),
	}
}

func TestIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"disjoint before", span(1, 2), span(3, 4), false},
		{"disjoint after", span(3, 4), span(1, 2), false},
		{"touching a.end == b.start", span(1, 2), span(2, 3), false},
		{"touching b.end == a.start", span(2, 3), span(1, 2), false},
		{"partial overlap", span(1, 3), span(2, 4), true},
		{"containment", span(1, 5), span(2, 3), true},
		{"identical", span(1, 2), span(1, 2), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			// Overlap is symmetric.
			assert.Equal(t, tc.want, tc.b.Overlaps(tc.a))
		})
	}
}

func TestIntervalContains(t *testing.T) {
	i := span(10, 12)

	assert.True(t, i.Contains(i.Start), "start instant is occupied")
	assert.True(t, i.Contains(i.Start.Add(time.Hour)))
	assert.False(t, i.Contains(i.End), "end instant is released")
	assert.False(t, i.Contains(i.Start.Add(-time.Minute)))
}

func TestIntervalIsZero(t *testing.T) {
	assert.True(t, Interval{}.IsZero())
	assert.False(t, span(1, 2).IsZero())
}
