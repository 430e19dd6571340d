package portal

import (
	"sort"
	"time"

	"github.com/spec-kit/helpdesk-portal/internal/domain"
)

// TimelineEntry is one rendered message in a ticket's thread.
type TimelineEntry struct {
	ID            string             `json:"id"`
	Type          domain.MessageType `json:"type"`
	AuthorID      string             `json:"author_id,omitempty"`
	AuthorName    string             `json:"author_name,omitempty"`
	Content       string             `json:"content"`
	CreatedAt     time.Time          `json:"created_at"`
	FileID        *string            `json:"file_id,omitempty"`
	IsCurrentUser bool               `json:"is_current_user"`
}

// Timeline normalizes a ticket's messages into display order: oldest first,
// ascending by creation time, regardless of how the backend ordered them.
// Messages authored by the caller are flagged for alignment.
func Timeline(messages []domain.Message, currentUserID string) []TimelineEntry {
	entries := make([]TimelineEntry, 0, len(messages))
	for _, msg := range messages {
		entry := TimelineEntry{
			ID:        msg.ID,
			Type:      msg.Type,
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
			FileID:    msg.FileID,
		}
		if msg.Type == domain.MessageTypeUser {
			entry.AuthorID = msg.Author.ID
			entry.AuthorName = msg.Author.Name
			entry.IsCurrentUser = currentUserID != "" && msg.Author.ID == currentUserID
		}
		entries = append(entries, entry)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
	return entries
}
