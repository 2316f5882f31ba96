package models

// User is a registered exercise tracker user. IDs are opaque strings
// produced by whichever store created the record.
type User struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}
