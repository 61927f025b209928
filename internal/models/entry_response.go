package models

// CreateEntryResponse represents the response after creating a diary entry
type CreateEntryResponse struct {
	Message string `json:"message"`
	ID      int    `json:"id"`
}

// MessageResponse represents a simple status message response
type MessageResponse struct {
	Message string `json:"message"`
}
