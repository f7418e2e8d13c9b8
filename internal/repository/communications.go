package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/healthconnect-sl/healthconnect/internal/domain"
)

type CommunicationRepo struct {
	db *pgxpool.Pool
}

func NewCommunicationRepo(db *pgxpool.Pool) *CommunicationRepo {
	return &CommunicationRepo{db: db}
}

func (r *CommunicationRepo) Log(ctx context.Context, c domain.Communication) (string, error) {
	id := uuid.NewString()
	_, err := r.db.Exec(ctx, `
		INSERT INTO communications (id, user_id, phone_number, channel, direction, content, external_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, c.UserID, c.PhoneNumber, c.Channel, c.Direction, c.Content, c.ExternalID, c.Status)
	if err != nil {
		return "", fmt.Errorf("log communication: %w", err)
	}
	return id, nil
}

func (r *CommunicationRepo) RecentByPhone(ctx context.Context, phone string, limit int) ([]domain.Communication, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, phone_number, channel, direction, content, external_id, status, created_at
		FROM communications
		WHERE phone_number = $1
		ORDER BY created_at DESC
		LIMIT $2`, phone, limit)
	if err != nil {
		return nil, fmt.Errorf("recent communications: %w", err)
	}
	defer rows.Close()

	var out []domain.Communication
	for rows.Next() {
		var c domain.Communication
		if err := rows.Scan(&c.ID, &c.UserID, &c.PhoneNumber, &c.Channel, &c.Direction,
			&c.Content, &c.ExternalID, &c.Status, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan communication: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
