package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vedran77/whispr/internal/domain"
)

type MessageRepo struct {
	pool *pgxpool.Pool
}

func NewMessageRepo(pool *pgxpool.Pool) *MessageRepo {
	return &MessageRepo{pool: pool}
}

func (r *MessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	query := `
		INSERT INTO messages (id, recipient_id, content, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(ctx, query,
		msg.ID, msg.RecipientID, msg.Content, msg.CreatedAt,
	)
	return err
}

func (r *MessageRepo) ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]domain.Message, error) {
	// Najnovije prvo; id kao tie-break za stabilan redoslijed
	query := `
		SELECT id, recipient_id, content, created_at
		FROM messages
		WHERE recipient_id = $1
		ORDER BY created_at DESC, id`

	rows, err := r.pool.Query(ctx, query, recipientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var msg domain.Message
		if err := rows.Scan(&msg.ID, &msg.RecipientID, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}
