package models

import "time"

// User represents a registered account.
type User struct {
	UserID         int64     `json:"userId"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"` // Never expose this to the client
	CreatedAt      time.Time `json:"createdAt"`
}
