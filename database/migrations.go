package database

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
)

// Schema holds one row per train and one row per (train, seat)
const Schema = `
CREATE TABLE IF NOT EXISTS trains (
	train_number      TEXT PRIMARY KEY,
	train_name        TEXT NOT NULL,
	start_destination TEXT NOT NULL,
	end_destination   TEXT NOT NULL,
	departure_date    DATE NOT NULL,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_trains_route ON trains (start_destination, end_destination);

CREATE TABLE IF NOT EXISTS seats (
	train_number     TEXT NOT NULL REFERENCES trains (train_number) ON DELETE CASCADE,
	seat_number      INTEGER NOT NULL CHECK (seat_number BETWEEN 1 AND 50),
	seat_type        TEXT NOT NULL CHECK (seat_type IN ('window', 'aisle', 'middle')),
	booked           BOOLEAN NOT NULL DEFAULT FALSE,
	passenger_name   TEXT NOT NULL DEFAULT '',
	passenger_age    INTEGER,
	passenger_gender TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (train_number, seat_number)
);

CREATE INDEX IF NOT EXISTS idx_seats_free ON seats (train_number, seat_type, seat_number) WHERE NOT booked;
`

// RunMigrations ensures all required tables exist
func RunMigrations(db *sqlx.DB) error {
	log.Println("Checking database schema...")

	if _, err := db.Exec(Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	log.Println("Database schema is up to date")
	return nil
}
