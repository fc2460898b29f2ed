// Package postgres stores trains and seat inventories in PostgreSQL.
//
// Every seat mutation runs in a transaction that first locks the train row,
// which serializes writers of one train while leaving other trains untouched.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"railway-reservation/models"
)

const uniqueViolation = "23505"

const selectTrains = `
	SELECT train_number, train_name, start_destination, end_destination,
		to_char(departure_date, 'YYYY-MM-DD') AS departure_date
	FROM trains
`

const selectSeats = `
	SELECT train_number, seat_number, seat_type, booked,
		passenger_name, passenger_age, passenger_gender
	FROM seats
`

// Store implements both the train and seat stores on one connection pool
type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateTrain(ctx context.Context, train models.Train) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO trains (train_number, train_name, start_destination, end_destination, departure_date)
		VALUES ($1, $2, $3, $4, $5)
	`, train.Number, train.Name, train.StartDestination, train.EndDestination, train.DepartureDate)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return models.ErrDuplicateTrain
	}
	if err != nil {
		return fmt.Errorf("failed to create train: %w", err)
	}
	return nil
}

func (s *Store) GetTrain(ctx context.Context, number string) (*models.Train, error) {
	var train models.Train
	err := s.db.GetContext(ctx, &train, selectTrains+` WHERE train_number = $1`, number)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrTrainNotFound
		}
		return nil, err
	}
	return &train, nil
}

func (s *Store) FindTrainsByRoute(ctx context.Context, start, end string) ([]models.Train, error) {
	var trains []models.Train
	err := s.db.SelectContext(ctx, &trains, selectTrains+`
		WHERE start_destination = $1 AND end_destination = $2
		ORDER BY created_at, train_number
	`, start, end)
	return trains, err
}

func (s *Store) ListTrains(ctx context.Context) ([]models.Train, error) {
	var trains []models.Train
	err := s.db.SelectContext(ctx, &trains, selectTrains+` ORDER BY created_at, train_number`)
	return trains, err
}

func (s *Store) DeleteTrain(ctx context.Context, number string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM trains WHERE train_number = $1`, number)
	return err
}

func (s *Store) CreateInventory(ctx context.Context, trainNumber string, seats []models.Seat) error {
	return s.withTrainLock(ctx, trainNumber, func(tx *sqlx.Tx) error {
		var existing int
		err := tx.GetContext(ctx, &existing, `SELECT COUNT(*) FROM seats WHERE train_number = $1`, trainNumber)
		if err != nil {
			return fmt.Errorf("failed to check seat inventory: %w", err)
		}
		if existing > 0 {
			return models.ErrInventoryExists
		}

		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO seats (train_number, seat_number, seat_type, booked, passenger_name, passenger_age, passenger_gender)
			VALUES (:train_number, :seat_number, :seat_type, :booked, :passenger_name, :passenger_age, :passenger_gender)
		`, seats)
		if err != nil {
			return fmt.Errorf("failed to insert seats: %w", err)
		}
		return nil
	})
}

func (s *Store) ListSeats(ctx context.Context, trainNumber string) ([]models.Seat, error) {
	var seats []models.Seat
	err := s.db.SelectContext(ctx, &seats, selectSeats+`
		WHERE train_number = $1
		ORDER BY seat_number ASC
	`, trainNumber)
	return seats, err
}

func (s *Store) ClaimSeat(ctx context.Context, trainNumber string, category models.SeatCategory, passenger models.Passenger) (int, error) {
	var seatNumber int
	err := s.withTrainLock(ctx, trainNumber, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &seatNumber, `
			UPDATE seats
			SET booked = TRUE, passenger_name = $3, passenger_age = $4, passenger_gender = $5
			WHERE train_number = $1 AND seat_number = (
				SELECT seat_number
				FROM seats
				WHERE train_number = $1 AND seat_type = $2 AND NOT booked
				ORDER BY seat_number ASC
				LIMIT 1
			)
			RETURNING seat_number
		`, trainNumber, category, passenger.Name, passenger.Age, passenger.Gender)
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrNoAvailableSeat
		}
		if err != nil {
			return fmt.Errorf("failed to claim seat: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return seatNumber, nil
}

func (s *Store) ReleaseSeat(ctx context.Context, trainNumber string, seatNumber int) error {
	if !models.ValidSeatNumber(seatNumber) {
		return models.ErrSeatOutOfRange
	}

	return s.withTrainLock(ctx, trainNumber, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, `
			UPDATE seats
			SET booked = FALSE, passenger_name = '', passenger_age = NULL, passenger_gender = ''
			WHERE train_number = $1 AND seat_number = $2
		`, trainNumber, seatNumber)
		if err != nil {
			return fmt.Errorf("failed to release seat: %w", err)
		}
		return nil
	})
}

func (s *Store) DestroyInventory(ctx context.Context, trainNumber string) error {
	err := s.withTrainLock(ctx, trainNumber, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM seats WHERE train_number = $1`, trainNumber)
		return err
	})
	// seats cascade with their train, nothing is left to remove
	if errors.Is(err, models.ErrTrainNotFound) {
		return nil
	}
	return err
}

// withTrainLock runs fn in a transaction holding the train row lock
func (s *Store) withTrainLock(ctx context.Context, trainNumber string, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	var locked string
	err = tx.GetContext(ctx, &locked, `
		SELECT train_number
		FROM trains
		WHERE train_number = $1
		FOR UPDATE
	`, trainNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrTrainNotFound
		}
		return fmt.Errorf("failed to lock train: %w", err)
	}

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
