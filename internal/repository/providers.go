package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/healthconnect-sl/healthconnect/internal/domain"
)

type ProviderRepo struct {
	db *pgxpool.Pool
}

func NewProviderRepo(db *pgxpool.Pool) *ProviderRepo {
	return &ProviderRepo{db: db}
}

// Available lists currently available providers, optionally filtered by
// specialization. Assignment callers take the first entry; the
// read-then-assign window is an accepted race.
func (r *ProviderRepo) Available(ctx context.Context, specialization string) ([]domain.Provider, error) {
	query := `
		SELECT id, full_name, phone_number, specialization, years_experience, consultation_fee, is_available, created_at
		FROM providers
		WHERE is_available`
	args := []any{}
	if specialization != "" {
		query += ` AND specialization = $1`
		args = append(args, specialization)
	}
	query += ` ORDER BY id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("available providers: %w", err)
	}
	defer rows.Close()

	var out []domain.Provider
	for rows.Next() {
		var p domain.Provider
		if err := rows.Scan(&p.ID, &p.FullName, &p.PhoneNumber, &p.Specialization,
			&p.YearsExperience, &p.Fee, &p.IsAvailable, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan provider: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
