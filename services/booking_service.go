package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"railway-reservation/models"
)

// InventoryService owns the seat inventories of all trains.
// Booking state only changes through this service.
type InventoryService struct {
	seats SeatStore
}

// NewInventoryService creates an inventory engine backed by seats
func NewInventoryService(seats SeatStore) *InventoryService {
	return &InventoryService{seats: seats}
}

// CreateInventory generates the unbooked seats of a train
func (s *InventoryService) CreateInventory(ctx context.Context, trainNumber string) error {
	trainNumber, err := normalizeTrainNumber(trainNumber)
	if err != nil {
		return err
	}

	if err := s.seats.CreateInventory(ctx, trainNumber, models.NewInventory(trainNumber)); err != nil {
		return err
	}

	log.Printf("Seat inventory created: %d seats for train %s", models.SeatsPerTrain, trainNumber)

	return nil
}

// ViewSeats returns the seats of a train ordered by seat number
func (s *InventoryService) ViewSeats(ctx context.Context, trainNumber string) ([]models.Seat, error) {
	trainNumber, err := normalizeTrainNumber(trainNumber)
	if err != nil {
		return nil, err
	}

	seats, err := s.seats.ListSeats(ctx, trainNumber)
	if err != nil {
		return nil, fmt.Errorf("error loading seats: %w", err)
	}
	return nonNil(seats), nil
}

// BookTicket books the lowest-numbered free seat of the requested category
// and returns its number
func (s *InventoryService) BookTicket(ctx context.Context, trainNumber string, req models.BookingRequest) (int, error) {
	trainNumber, err := normalizeTrainNumber(trainNumber)
	if err != nil {
		return 0, err
	}
	if err := validateBooking(req); err != nil {
		return 0, err
	}

	passenger := req.Passenger()
	passenger.Name = strings.TrimSpace(passenger.Name)

	seatNumber, err := s.seats.ClaimSeat(ctx, trainNumber, req.SeatType, passenger)
	if err != nil {
		return 0, err
	}

	log.Printf("Ticket booked: train %s seat %d (%s) for %s", trainNumber, seatNumber, req.SeatType, passenger.Name)

	return seatNumber, nil
}

// CancelTicket unbooks a seat and clears its passenger details.
// Cancelling a free seat is a no-op.
func (s *InventoryService) CancelTicket(ctx context.Context, trainNumber string, seatNumber int) error {
	trainNumber, err := normalizeTrainNumber(trainNumber)
	if err != nil {
		return err
	}
	if !models.ValidSeatNumber(seatNumber) {
		return models.ErrSeatOutOfRange
	}

	if err := s.seats.ReleaseSeat(ctx, trainNumber, seatNumber); err != nil {
		return err
	}

	log.Printf("Ticket cancelled: train %s seat %d", trainNumber, seatNumber)

	return nil
}

// DestroyInventory removes every seat of a train
func (s *InventoryService) DestroyInventory(ctx context.Context, trainNumber string) error {
	trainNumber, err := normalizeTrainNumber(trainNumber)
	if err != nil {
		return err
	}
	return s.seats.DestroyInventory(ctx, trainNumber)
}

// Availability counts free and booked seats of a train
func (s *InventoryService) Availability(ctx context.Context, trainNumber string) (*models.Availability, error) {
	seats, err := s.ViewSeats(ctx, trainNumber)
	if err != nil {
		return nil, err
	}

	availability := &models.Availability{
		TrainNumber: strings.TrimSpace(trainNumber),
		Total:       len(seats),
		FreeByType:  make(map[models.SeatCategory]int, len(models.SeatCategories)),
	}
	for _, category := range models.SeatCategories {
		availability.FreeByType[category] = 0
	}

	for _, seat := range seats {
		if seat.Booked {
			availability.Booked++
			continue
		}
		availability.Free++
		availability.FreeByType[seat.SeatType]++
	}

	return availability, nil
}

// normalizeTrainNumber trims a train number and rejects empty ones
func normalizeTrainNumber(number string) (string, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return "", models.ValidationError("train number is required")
	}
	return number, nil
}

func validateBooking(req models.BookingRequest) error {
	switch {
	case strings.TrimSpace(req.PassengerName) == "":
		return models.ValidationError("passenger name is required")
	case req.PassengerAge < 1:
		return models.ValidationError("passenger age must be at least 1")
	case !req.SeatType.Valid():
		return models.ValidationError(fmt.Sprintf("unknown seat type %q", req.SeatType))
	}

	for _, gender := range models.PassengerGenders {
		if req.PassengerGender == gender {
			return nil
		}
	}
	return models.ValidationError(fmt.Sprintf("unknown passenger gender %q", req.PassengerGender))
}
