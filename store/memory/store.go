// Package memory keeps trains and seat inventories in process memory.
package memory

import (
	"context"
	"sync"

	"railway-reservation/models"
)

// Store implements both the train and seat stores.
// The catalog is guarded by one RWMutex, each inventory by its own mutex,
// so bookings on different trains never wait for each other.
type Store struct {
	mu          sync.RWMutex
	trains      map[string]models.Train
	order       []string
	inventories map[string]*inventory
}

type inventory struct {
	mu        sync.Mutex
	seats     []models.Seat
	destroyed bool
}

func New() *Store {
	return &Store{
		trains:      map[string]models.Train{},
		inventories: map[string]*inventory{},
	}
}

func (s *Store) CreateTrain(_ context.Context, train models.Train) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.trains[train.Number]; found {
		return models.ErrDuplicateTrain
	}

	s.trains[train.Number] = train
	s.order = append(s.order, train.Number)

	return nil
}

func (s *Store) GetTrain(_ context.Context, number string) (*models.Train, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	train, found := s.trains[number]
	if !found {
		return nil, models.ErrTrainNotFound
	}

	return &train, nil
}

func (s *Store) FindTrainsByRoute(_ context.Context, start, end string) ([]models.Train, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var trains []models.Train
	for _, number := range s.order {
		train := s.trains[number]
		if train.StartDestination == start && train.EndDestination == end {
			trains = append(trains, train)
		}
	}

	return trains, nil
}

func (s *Store) ListTrains(_ context.Context) ([]models.Train, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	trains := make([]models.Train, 0, len(s.order))
	for _, number := range s.order {
		trains = append(trains, s.trains[number])
	}

	return trains, nil
}

func (s *Store) DeleteTrain(_ context.Context, number string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.trains[number]; !found {
		return nil
	}

	delete(s.trains, number)
	for i, n := range s.order {
		if n == number {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	// seats go with their train
	if inv, found := s.inventories[number]; found {
		delete(s.inventories, number)
		inv.destroy()
	}

	return nil
}

func (s *Store) CreateInventory(_ context.Context, trainNumber string, seats []models.Seat) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.trains[trainNumber]; !found {
		return models.ErrTrainNotFound
	}
	if _, found := s.inventories[trainNumber]; found {
		return models.ErrInventoryExists
	}

	s.inventories[trainNumber] = &inventory{seats: copySeats(seats)}

	return nil
}

func (s *Store) ListSeats(_ context.Context, trainNumber string) ([]models.Seat, error) {
	inv, _ := s.lookup(trainNumber)
	if inv == nil {
		return nil, nil
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	if inv.destroyed {
		return nil, nil
	}

	return copySeats(inv.seats), nil
}

func (s *Store) ClaimSeat(_ context.Context, trainNumber string, category models.SeatCategory, passenger models.Passenger) (int, error) {
	inv, trainFound := s.lookup(trainNumber)
	if !trainFound {
		return 0, models.ErrTrainNotFound
	}
	if inv == nil {
		return 0, models.ErrNoAvailableSeat
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	if inv.destroyed {
		return 0, models.ErrTrainNotFound
	}

	// seats are kept ordered by number, the first match is the lowest
	for i := range inv.seats {
		seat := &inv.seats[i]
		if seat.Booked || seat.SeatType != category {
			continue
		}

		age := passenger.Age
		seat.Booked = true
		seat.PassengerName = passenger.Name
		seat.PassengerAge = &age
		seat.PassengerGender = passenger.Gender

		return seat.SeatNumber, nil
	}

	return 0, models.ErrNoAvailableSeat
}

func (s *Store) ReleaseSeat(_ context.Context, trainNumber string, seatNumber int) error {
	if !models.ValidSeatNumber(seatNumber) {
		return models.ErrSeatOutOfRange
	}

	inv, trainFound := s.lookup(trainNumber)
	if !trainFound {
		return models.ErrTrainNotFound
	}
	if inv == nil {
		return nil
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	for i := range inv.seats {
		seat := &inv.seats[i]
		if seat.SeatNumber != seatNumber {
			continue
		}
		seat.Booked = false
		seat.PassengerName = ""
		seat.PassengerAge = nil
		seat.PassengerGender = ""
		break
	}

	return nil
}

func (s *Store) DestroyInventory(_ context.Context, trainNumber string) error {
	s.mu.Lock()
	inv, found := s.inventories[trainNumber]
	delete(s.inventories, trainNumber)
	s.mu.Unlock()

	if !found {
		return nil
	}

	inv.destroy()

	return nil
}

// destroy empties the inventory so a booking holding the old pointer cannot succeed
func (inv *inventory) destroy() {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	inv.destroyed = true
	inv.seats = nil
}

// lookup returns the train's inventory (nil if none) and whether the train exists
func (s *Store) lookup(trainNumber string) (*inventory, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, trainFound := s.trains[trainNumber]
	return s.inventories[trainNumber], trainFound
}

func copySeats(seats []models.Seat) []models.Seat {
	copied := make([]models.Seat, len(seats))
	for i, seat := range seats {
		if seat.PassengerAge != nil {
			age := *seat.PassengerAge
			seat.PassengerAge = &age
		}
		copied[i] = seat
	}
	return copied
}
