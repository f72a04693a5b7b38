package models

import "time"

// Entry is a single journal entry. UserID is the owning account; it is always
// taken from the authenticated identity, never from a request body.
type Entry struct {
	EntryID   int64     `json:"entryId"`
	UserID    int64     `json:"userId"`
	Title     string    `json:"title"`
	Notes     string    `json:"notes"`
	PhotoURL  string    `json:"photoUrl"`
	CreatedAt time.Time `json:"createdAt"`
}
