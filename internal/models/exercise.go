package models

import "time"

// Exercise is a single logged exercise. Date is the calendar day at
// midnight UTC.
type Exercise struct {
	ID          string
	UserID      string
	Description string
	Duration    int
	Date        time.Time
}

// LogQuery selects a user's exercises. Nil bounds are not applied and a
// Limit <= 0 means no cap. Results are ordered by Date ascending.
type LogQuery struct {
	UserID string
	From   *time.Time
	To     *time.Time
	Limit  int
}

// Matches reports whether e satisfies the query's user and date bounds.
func (q LogQuery) Matches(e Exercise) bool {
	if e.UserID != q.UserID {
		return false
	}
	if q.From != nil && e.Date.Before(*q.From) {
		return false
	}
	if q.To != nil && e.Date.After(*q.To) {
		return false
	}
	return true
}
