package models

import "time"

// User is a registered account held in the in-memory directory.
// PasswordHash stores the bcrypt hash and is never serialized or returned.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
