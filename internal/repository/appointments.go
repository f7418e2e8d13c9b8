package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/healthconnect-sl/healthconnect/internal/domain"
)

type AppointmentRepo struct {
	db *pgxpool.Pool
}

func NewAppointmentRepo(db *pgxpool.Pool) *AppointmentRepo {
	return &AppointmentRepo{db: db}
}

func (r *AppointmentRepo) Create(ctx context.Context, a domain.Appointment) (*domain.Appointment, error) {
	a.ID = uuid.NewString()
	a.Status = "pending"
	row := r.db.QueryRow(ctx, `
		INSERT INTO appointments (id, patient_name, patient_phone, clinic_id, doctor_name, appointment_date, appointment_time, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`,
		a.ID, a.PatientName, a.PatientPhone, a.ClinicID, a.DoctorName,
		a.AppointmentDate, a.AppointmentTime, a.Reason, a.Status)
	if err := row.Scan(&a.CreatedAt); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	return &a, nil
}

func (r *AppointmentRepo) UpcomingByPhone(ctx context.Context, phone string, limit int) ([]domain.Appointment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, patient_name, patient_phone, clinic_id, doctor_name, appointment_date, appointment_time, reason, status, created_at
		FROM appointments
		WHERE patient_phone = $1 AND appointment_date >= $2 AND status <> 'cancelled'
		ORDER BY appointment_date ASC
		LIMIT $3`, phone, time.Now().UTC().Truncate(24*time.Hour), limit)
	if err != nil {
		return nil, fmt.Errorf("upcoming appointments: %w", err)
	}
	defer rows.Close()
	return collectAppointments(rows)
}

func (r *AppointmentRepo) List(ctx context.Context, limit int) ([]domain.Appointment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, patient_name, patient_phone, clinic_id, doctor_name, appointment_date, appointment_time, reason, status, created_at
		FROM appointments
		ORDER BY appointment_date ASC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()
	return collectAppointments(rows)
}

func collectAppointments(rows pgx.Rows) ([]domain.Appointment, error) {
	var out []domain.Appointment
	for rows.Next() {
		var a domain.Appointment
		if err := rows.Scan(&a.ID, &a.PatientName, &a.PatientPhone, &a.ClinicID, &a.DoctorName,
			&a.AppointmentDate, &a.AppointmentTime, &a.Reason, &a.Status, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
