package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/healthconnect-sl/healthconnect/internal/domain"
)

type ConsultationRepo struct {
	db *pgxpool.Pool
}

func NewConsultationRepo(db *pgxpool.Pool) *ConsultationRepo {
	return &ConsultationRepo{db: db}
}

const consultationColumns = `id, patient_id, patient_phone, provider_id, channel, consultation_type,
	urgency, status, symptoms, diagnosis, treatment_plan, consultation_fee, payment_status,
	created_at, completed_at`

func scanConsultation(row pgx.Row) (*domain.Consultation, error) {
	var c domain.Consultation
	err := row.Scan(&c.ID, &c.PatientID, &c.PatientPhone, &c.ProviderID, &c.Channel, &c.Type,
		&c.Urgency, &c.Status, &c.Symptoms, &c.Diagnosis, &c.TreatmentPlan, &c.Fee,
		&c.PaymentStatus, &c.CreatedAt, &c.CompletedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ConsultationRepo) Create(ctx context.Context, req domain.ConsultationRequest, patientID *int64) (*domain.Consultation, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO consultations (id, patient_id, patient_phone, channel, consultation_type, urgency, symptoms)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+consultationColumns,
		uuid.NewString(), patientID, req.PatientPhone, req.Channel, req.Type, req.Urgency, req.Symptoms)
	c, err := scanConsultation(row)
	if err != nil {
		return nil, fmt.Errorf("create consultation: %w", err)
	}
	return c, nil
}

// AssignProvider attaches a provider and moves the consultation to in_progress.
func (r *ConsultationRepo) AssignProvider(ctx context.Context, consultationID string, providerID int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE consultations SET provider_id = $2, status = 'in_progress'
		WHERE id = $1`, consultationID, providerID)
	if err != nil {
		return fmt.Errorf("assign provider: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConsultationNotFound
	}
	return nil
}

func (r *ConsultationRepo) GetByID(ctx context.Context, id string) (*domain.Consultation, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+consultationColumns+` FROM consultations WHERE id = $1`, id)
	c, err := scanConsultation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrConsultationNotFound
		}
		return nil, fmt.Errorf("get consultation: %w", err)
	}
	return c, nil
}

func (r *ConsultationRepo) RecentByPhone(ctx context.Context, phone string, limit int) ([]domain.Consultation, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+consultationColumns+` FROM consultations
		WHERE patient_phone = $1
		ORDER BY created_at DESC
		LIMIT $2`, phone, limit)
	if err != nil {
		return nil, fmt.Errorf("recent consultations: %w", err)
	}
	defer rows.Close()

	var out []domain.Consultation
	for rows.Next() {
		c, err := scanConsultation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan consultation: %w", err)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *ConsultationRepo) ListPending(ctx context.Context, limit int) ([]domain.Consultation, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+consultationColumns+` FROM consultations
		WHERE status = 'pending'
		ORDER BY created_at ASC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("pending consultations: %w", err)
	}
	defer rows.Close()

	var out []domain.Consultation
	for rows.Next() {
		c, err := scanConsultation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan consultation: %w", err)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}
