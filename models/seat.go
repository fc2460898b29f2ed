package models

// SeatsPerTrain is the fixed size of every train's inventory
const SeatsPerTrain = 50

// SeatCategory is the position of a seat within its row
type SeatCategory string

const (
	SeatWindow SeatCategory = "window"
	SeatAisle  SeatCategory = "aisle"
	SeatMiddle SeatCategory = "middle"
)

// SeatCategories lists every category in display order
var SeatCategories = []SeatCategory{SeatAisle, SeatMiddle, SeatWindow}

// Valid reports whether c is a known category
func (c SeatCategory) Valid() bool {
	switch c {
	case SeatWindow, SeatAisle, SeatMiddle:
		return true
	}
	return false
}

// CategorizeSeat derives the category of a seat from its number
func CategorizeSeat(seatNumber int) SeatCategory {
	switch seatNumber % 10 {
	case 0, 4, 5, 9:
		return SeatWindow
	case 2, 3, 6, 7:
		return SeatAisle
	default:
		return SeatMiddle
	}
}

// Seat represents a single bookable seat of a train.
// Passenger fields are only set while Booked is true.
type Seat struct {
	TrainNumber     string       `json:"train_number" db:"train_number"`
	SeatNumber      int          `json:"seat_number" db:"seat_number"`
	SeatType        SeatCategory `json:"seat_type" db:"seat_type"`
	Booked          bool         `json:"booked" db:"booked"`
	PassengerName   string       `json:"passenger_name" db:"passenger_name"`
	PassengerAge    *int         `json:"passenger_age" db:"passenger_age"`
	PassengerGender string       `json:"passenger_gender" db:"passenger_gender"`
}

// NewInventory builds the unbooked seats 1..SeatsPerTrain of a train
func NewInventory(trainNumber string) []Seat {
	seats := make([]Seat, 0, SeatsPerTrain)
	for n := 1; n <= SeatsPerTrain; n++ {
		seats = append(seats, Seat{
			TrainNumber: trainNumber,
			SeatNumber:  n,
			SeatType:    CategorizeSeat(n),
		})
	}
	return seats
}

// ValidSeatNumber reports whether n falls inside a train's inventory
func ValidSeatNumber(n int) bool {
	return n >= 1 && n <= SeatsPerTrain
}

// Availability summarizes free and booked seats of a train
type Availability struct {
	TrainNumber string               `json:"train_number"`
	Total       int                  `json:"total"`
	Booked      int                  `json:"booked"`
	Free        int                  `json:"free"`
	FreeByType  map[SeatCategory]int `json:"free_by_type"`
}
