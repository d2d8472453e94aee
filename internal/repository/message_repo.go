package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"dm-chat/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, message domain.Message) error
	ListByReceiverID(ctx context.Context, receiverID int64) ([]domain.InboxEntry, error)
}

type PgMessageRepository struct {
	pool *pgxpool.Pool
}

func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

func (r *PgMessageRepository) Create(ctx context.Context, message domain.Message) error {
	const query = `
		INSERT INTO messages (sender_id, receiver_id, message, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.pool.Exec(ctx, query,
		message.SenderID,
		message.ReceiverID,
		message.Body,
		message.CreatedAt,
	)
	return err
}

// ListByReceiverID devuelve los mensajes recibidos junto al username del
// remitente, en orden de inserción (id ascendente).
func (r *PgMessageRepository) ListByReceiverID(ctx context.Context, receiverID int64) ([]domain.InboxEntry, error) {
	const query = `
		SELECT messages.message, users.username
		FROM messages
		INNER JOIN users ON messages.sender_id = users.id
		WHERE messages.receiver_id = $1
		ORDER BY messages.id ASC
	`

	rows, err := r.pool.Query(ctx, query, receiverID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.InboxEntry
	for rows.Next() {
		var entry domain.InboxEntry
		if err := rows.Scan(&entry.Body, &entry.Author); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
