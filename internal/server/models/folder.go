package models

import "time"

// Folder groups notes for a single user. UserID is set at creation and never
// changes; name and color are fixed after creation as well (the API exposes
// no folder update).
type Folder struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

// Owner returns the owning user's ID; used by the ownership guard.
func (f *Folder) Owner() string { return f.UserID }
