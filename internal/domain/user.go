package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user.
//
// DailyExerciseCount and LastExerciseDate together implement the daily
// session quota: the stored count only applies to LastExerciseDate, any
// other day starts from zero.
type User struct {
	ID                 uuid.UUID
	Email              string
	PasswordHash       string
	Name               string
	Phone              string
	Preferences        []string
	Tier               Tier
	DailyExerciseCount int
	LastExerciseDate   *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// EffectiveExerciseCount returns the number of sessions already consumed
// today. A date rollover resets the counter without touching storage.
func (u *User) EffectiveExerciseCount(today time.Time) int {
	if u.LastExerciseDate == nil || !sameDay(*u.LastExerciseDate, today) {
		return 0
	}
	return u.DailyExerciseCount
}

// ExercisesRemaining returns how many sessions the user may still start
// today, counting the session being handed out. Never negative.
func (u *User) ExercisesRemaining(today time.Time) int {
	remaining := u.Tier.DailyExerciseLimit() - u.EffectiveExerciseCount(today) - 1
	if remaining < 0 {
		return 0
	}
	return remaining
}

// SessionsAvailable returns how many sessions the user may still start
// today. Unlike ExercisesRemaining no session is counted out. Never
// negative.
func (u *User) SessionsAvailable(today time.Time) int {
	available := u.Tier.DailyExerciseLimit() - u.EffectiveExerciseCount(today)
	if available < 0 {
		return 0
	}
	return available
}

// CanStartSession reports whether the daily session quota allows one more
// session today.
func (u *User) CanStartSession(today time.Time) bool {
	return u.EffectiveExerciseCount(today) < u.Tier.DailyExerciseLimit()
}

// DaysActive returns the number of calendar days since registration,
// inclusive of the registration day.
func (u *User) DaysActive(now time.Time) int {
	return int(now.Sub(u.CreatedAt).Hours()/24) + 1
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
