package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinetix/session-booking/internal/model"
)

var (
	testRoom = model.Room{ID: 1, Name: "Eldorado - IMAX", PriceCents: 1000}
	testFilm = model.Film{ID: 1, Title: "Rogue One", Genre: "SCI-FI", DurationMin: 120, PriceCents: 2000}
)

// at builds a UTC timestamp on a fixed day, so tests are not hostage to
// the wall clock the way the original time-of-day model was.
func at(day, hour, min int) time.Time {
	return time.Date(2025, time.March, day, hour, min, 0, 0, time.UTC)
}

func mustSession(t *testing.T, start time.Time) model.Session {
	t.Helper()
	s, err := model.NewSession(testRoom, testFilm, start)
	require.NoError(t, err)
	return s
}

func TestFitsEmptySchedule(t *testing.T) {
	sched := NewScheduler(nil)
	assert.True(t, sched.Fits(mustSession(t, at(1, 10, 0))))
}

func TestFitsRejectsIdenticalStart(t *testing.T) {
	existing := mustSession(t, at(1, 10, 0))
	sched := NewScheduler([]model.Session{existing})

	// Full overlap must always be rejected, whatever the durations.
	assert.False(t, sched.Fits(mustSession(t, at(1, 10, 0))))

	short := model.Film{ID: 2, Title: "Short", DurationMin: 5}
	cand, err := model.NewSession(testRoom, short, at(1, 10, 0))
	require.NoError(t, err)
	assert.False(t, sched.Fits(cand))
}

func TestFitsRejectsCandidateEndingInsideExisting(t *testing.T) {
	// Existing 11:00-13:00; candidate 10:00-12:00 runs into its start.
	sched := NewScheduler([]model.Session{mustSession(t, at(1, 11, 0))})
	assert.False(t, sched.Fits(mustSession(t, at(1, 10, 0))))
}

func TestFitsRejectsCandidateStartingInsideExisting(t *testing.T) {
	// Existing 10:00-12:00; candidate 11:00-13:00 starts mid-screening.
	sched := NewScheduler([]model.Session{mustSession(t, at(1, 10, 0))})
	assert.False(t, sched.Fits(mustSession(t, at(1, 11, 0))))
}

func TestFitsAllowsGapBetweenSessions(t *testing.T) {
	// Existing 10:00-12:00 and 18:00-20:00; candidate 13:00-15:00 sits in
	// the gap and must be admitted.
	sched := NewScheduler([]model.Session{
		mustSession(t, at(1, 10, 0)),
		mustSession(t, at(1, 18, 0)),
	})
	assert.True(t, sched.Fits(mustSession(t, at(1, 13, 0))))
}

func TestFitsAllowsBackToBack(t *testing.T) {
	// Existing 12:00-14:00.  A candidate starting exactly at 14:00 and a
	// candidate ending exactly at 12:00 are both adjacent, not conflicting.
	sched := NewScheduler([]model.Session{mustSession(t, at(1, 12, 0))})

	assert.True(t, sched.Fits(mustSession(t, at(1, 14, 0))), "candidate after existing")
	assert.True(t, sched.Fits(mustSession(t, at(1, 10, 0))), "candidate before existing")
}

func TestFitsTable(t *testing.T) {
	// Existing session occupies 10:00-12:00 throughout.
	sched := NewScheduler([]model.Session{mustSession(t, at(1, 10, 0))})

	tests := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{"well before", at(1, 6, 0), true},
		{"ends exactly at existing start", at(1, 8, 0), true},
		{"one minute too late to clear", at(1, 8, 1), false},
		{"starts one minute before existing ends", at(1, 11, 59), false},
		{"starts exactly at existing end", at(1, 12, 0), true},
		{"well after", at(1, 15, 0), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := sched.Fits(mustSession(t, tc.start))
			assert.Equal(t, tc.want, got)
		})
	}
}

// The original day-less model compared times of day only, so a session
// running 22:30-00:30 was judged to end "before" a 22:30 candidate.  With
// full date-times the comparison stays monotonic across midnight.
func TestFitsAcrossMidnight(t *testing.T) {
	existing := mustSession(t, at(1, 22, 30)) // ends 00:30 on day 2
	sched := NewScheduler([]model.Session{existing})

	assert.False(t, sched.Fits(mustSession(t, at(1, 22, 30))), "same start must conflict even near midnight")
	assert.False(t, sched.Fits(mustSession(t, at(1, 23, 45))), "starts inside the overnight session")
	assert.False(t, sched.Fits(mustSession(t, at(2, 0, 0))), "after midnight but still inside")
	assert.True(t, sched.Fits(mustSession(t, time.Date(2025, time.March, 2, 0, 30, 0, 0, time.UTC))), "back-to-back at 00:30 next day")
}

func TestFitsDoesNotMutateInputs(t *testing.T) {
	existing := []model.Session{mustSession(t, at(1, 10, 0))}
	before := existing[0]
	sched := NewScheduler(existing)

	cand := mustSession(t, at(1, 11, 0))
	_ = sched.Fits(cand)
	_ = sched.Fits(cand)

	assert.Equal(t, before, existing[0], "existing sessions must not be mutated")
}

func TestFitsExcluding(t *testing.T) {
	ten := mustSession(t, at(1, 10, 0))
	ten.ID = 7
	eighteen := mustSession(t, at(1, 18, 0))
	eighteen.ID = 8
	sched := NewScheduler([]model.Session{ten, eighteen})

	// Rescheduling session 7 onto its own slot is fine once it ignores itself.
	moved := mustSession(t, at(1, 10, 30))
	assert.False(t, sched.Fits(moved))
	assert.True(t, sched.FitsExcluding(moved, 7))

	// Still conflicts with the other session.
	clash := mustSession(t, at(1, 17, 0))
	assert.False(t, sched.FitsExcluding(clash, 7))
}
