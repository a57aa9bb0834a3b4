package models

import "time"

// Tag is a free-text label attached to a word for categorization
type Tag struct {
	ID        int64     `json:"id" db:"id"`
	WordID    int64     `json:"word_id" db:"word_id"`
	Name      string    `json:"name" db:"name"`
	URLName   string    `json:"url_name" db:"url_name"`
	CreatedBy int64     `json:"created_by" db:"created_by"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
