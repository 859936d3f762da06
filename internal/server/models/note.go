package models

import "time"

// Note is a user-owned text note. FolderID is nil for ungrouped notes;
// when set it must reference a folder of the same user.
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	FolderID  *string   `json:"folderId"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Owner returns the owning user's ID; used by the ownership guard.
func (n *Note) Owner() string { return n.UserID }
