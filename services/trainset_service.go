package services

import (
	"context"
	"database/sql"
	"fmt"

	"train-induction-ai/database"
	"train-induction-ai/models"
)

const trainsetColumns = `
	id, mileage, age, efficiency, brake_wear, telecom_clearance, metro_age_years,
	health_score, last_service_date, next_service_due_date,
	fitness_certificate_expiry_date, wheel_gauge_verification_date,
	fitness_certificate_status, job_card_status, branding_hours_left, decision`

// TrainsetStore reads and replaces the trainsets table
type TrainsetStore struct {
	db      *sql.DB
	dialect database.Dialect
}

// NewTrainsetStore creates a store over an open database
func NewTrainsetStore(db *sql.DB, dialect database.Dialect) *TrainsetStore {
	return &TrainsetStore{db: db, dialect: dialect}
}

// ListAll returns every trainset ordered by id.
// An empty table yields an empty, non-nil slice.
func (s *TrainsetStore) ListAll(ctx context.Context) ([]models.Trainset, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+trainsetColumns+` FROM trainsets ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query trainsets: %w", err)
	}
	defer rows.Close()

	trains := []models.Trainset{}
	for rows.Next() {
		t, err := scanTrainset(rows)
		if err != nil {
			return nil, err
		}
		trains = append(trains, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read trainsets: %w", err)
	}

	return trains, nil
}

// ReplaceAll swaps the table contents for trains in one transaction,
// so the table always holds exactly one generated fleet.
func (s *TrainsetStore) ReplaceAll(ctx context.Context, trains []models.Trainset) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM trainsets`); err != nil {
		return fmt.Errorf("failed to clear trainsets: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, s.dialect.Rebind(`
		INSERT INTO trainsets (`+trainsetColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`))
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range trains {
		if _, err = stmt.ExecContext(ctx,
			t.ID, t.Mileage, t.Age, t.Efficiency, t.BrakeWear, t.TelecomClearance, t.MetroAgeYears,
			t.HealthScore, t.LastServiceDate, t.NextServiceDueDate,
			t.FitnessCertificateExpiryDate, t.WheelGaugeVerificationDate,
			t.FitnessCertificateStatus, t.JobCardStatus, t.BrandingHoursLeft, t.Decision,
		); err != nil {
			return fmt.Errorf("failed to insert trainset %d: %w", t.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit trainsets: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanTrainset is the single row-to-record mapping for the trainsets table
func scanTrainset(row rowScanner) (models.Trainset, error) {
	var t models.Trainset
	err := row.Scan(
		&t.ID, &t.Mileage, &t.Age, &t.Efficiency, &t.BrakeWear, &t.TelecomClearance, &t.MetroAgeYears,
		&t.HealthScore, &t.LastServiceDate, &t.NextServiceDueDate,
		&t.FitnessCertificateExpiryDate, &t.WheelGaugeVerificationDate,
		&t.FitnessCertificateStatus, &t.JobCardStatus, &t.BrandingHoursLeft, &t.Decision,
	)
	if err != nil {
		return t, fmt.Errorf("failed to scan trainset: %w", err)
	}
	return t, nil
}
