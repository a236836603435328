package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message carries no sender reference; the schema has no such column.
type Message struct {
	ID          uuid.UUID `json:"id"`
	RecipientID uuid.UUID `json:"recipientId"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"createdAt"`
}
