package entities

import "time"

// DiaryEntry represents a single travel diary entry owned by a user
type DiaryEntry struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	UserID      int       `json:"userId"`
}
