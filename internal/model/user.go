package model

import "time"

type User struct {
	UserID       string
	FirstName    string
	BirthDate    time.Time
	RewardPoints int
}

// Age is the calendar-year difference only, no month/day adjustment.
// The skill has always computed it this way.
func (u *User) Age(now time.Time) int {
	return now.Year() - u.BirthDate.Year()
}
