package domain

import "time"

// User represents a registered traveller. The password hash is never part of it.
type User struct {
	ID        int64
	Username  string
	Email     string
	FirstName string
	CreatedAt time.Time
}

// Credentials pairs a user with the stored bcrypt hash. Only the
// authentication path reads it.
type Credentials struct {
	User         User
	PasswordHash string
}
