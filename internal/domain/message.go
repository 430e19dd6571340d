package domain

import "time"

// MessageType differentiates backend-generated entries from user replies.
type MessageType string

const (
	MessageTypeSystem MessageType = "SYSTEM"
	MessageTypeUser   MessageType = "USER"
)

// MessageAuthor identifies who wrote a message. Zero-valued for SYSTEM
// entries.
type MessageAuthor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Message is one entry in a ticket's thread. Messages are append-only and
// belong to exactly one ticket.
type Message struct {
	ID        string        `json:"id"`
	Type      MessageType   `json:"type"`
	Author    MessageAuthor `json:"author"`
	CreatedAt time.Time     `json:"created_at"`
	Content   string        `json:"content"`
	FileID    *string       `json:"file_id"`
}
