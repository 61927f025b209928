package models

// EntryRequest represents the request body for creating or updating a diary entry
type EntryRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
}
