package database

import (
	"context"
	"database/sql"
	"fmt"
)

// trainsetsSchema works on both sqlite and postgres
const trainsetsSchema = `
	CREATE TABLE IF NOT EXISTS trainsets (
		id INTEGER PRIMARY KEY,
		mileage DOUBLE PRECISION NOT NULL,
		age DOUBLE PRECISION NOT NULL,
		efficiency DOUBLE PRECISION NOT NULL,
		brake_wear DOUBLE PRECISION NOT NULL,
		telecom_clearance DOUBLE PRECISION NOT NULL,
		metro_age_years DOUBLE PRECISION NOT NULL,
		health_score INTEGER NOT NULL,
		last_service_date TEXT NOT NULL,
		next_service_due_date TEXT NOT NULL,
		fitness_certificate_expiry_date TEXT NOT NULL,
		wheel_gauge_verification_date TEXT NOT NULL,
		fitness_certificate_status TEXT NOT NULL,
		job_card_status TEXT NOT NULL,
		branding_hours_left DOUBLE PRECISION NOT NULL,
		decision TEXT NOT NULL
	)
`

// RunMigrations ensures all required tables exist
func RunMigrations(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, trainsetsSchema); err != nil {
		return fmt.Errorf("failed to create trainsets table: %w", err)
	}
	return nil
}
