package entity

import "time"

// Tool is a catalog entry: something useful worth remembering, labelled with tags.
type Tool struct {
	ID          int
	Title       string
	Link        string
	Description string
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
