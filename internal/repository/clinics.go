package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/healthconnect-sl/healthconnect/internal/domain"
)

type ClinicRepo struct {
	db *pgxpool.Pool
}

func NewClinicRepo(db *pgxpool.Pool) *ClinicRepo {
	return &ClinicRepo{db: db}
}

func (r *ClinicRepo) List(ctx context.Context) ([]domain.Clinic, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, address, phone, email, district, latitude, longitude, hours_description, specialties, is_featured, created_at
		FROM clinics
		ORDER BY is_featured DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("list clinics: %w", err)
	}
	defer rows.Close()

	var out []domain.Clinic
	for rows.Next() {
		var c domain.Clinic
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.Phone, &c.Email, &c.District,
			&c.Latitude, &c.Longitude, &c.HoursDescription, &c.Specialties, &c.IsFeatured,
			&c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan clinic: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
