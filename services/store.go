package services

import (
	"context"

	"railway-reservation/models"
)

// TrainStore persists train records
type TrainStore interface {
	// CreateTrain fails with models.ErrDuplicateTrain if the number is taken.
	CreateTrain(ctx context.Context, train models.Train) error
	// GetTrain fails with models.ErrTrainNotFound.
	GetTrain(ctx context.Context, number string) (*models.Train, error)
	FindTrainsByRoute(ctx context.Context, start, end string) ([]models.Train, error)
	// ListTrains returns trains in insertion order.
	ListTrains(ctx context.Context) ([]models.Train, error)
	// DeleteTrain is a no-op for unknown numbers.
	DeleteTrain(ctx context.Context, number string) error
}

// SeatStore persists seat inventories. Mutations are serialized per train.
type SeatStore interface {
	// CreateInventory fails with models.ErrTrainNotFound or models.ErrInventoryExists.
	CreateInventory(ctx context.Context, trainNumber string, seats []models.Seat) error
	// ListSeats returns seats ordered by seat number, empty if there is no inventory.
	ListSeats(ctx context.Context, trainNumber string) ([]models.Seat, error)
	// ClaimSeat atomically books the lowest-numbered free seat of a category
	// and returns its number, or fails with models.ErrNoAvailableSeat.
	ClaimSeat(ctx context.Context, trainNumber string, category models.SeatCategory, passenger models.Passenger) (int, error)
	// ReleaseSeat unbooks a seat and clears its passenger fields.
	ReleaseSeat(ctx context.Context, trainNumber string, seatNumber int) error
	DestroyInventory(ctx context.Context, trainNumber string) error
}
