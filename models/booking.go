package models

// Passenger genders accepted at booking
var PassengerGenders = []string{"Male", "Female", "Other"}

// Passenger holds the details stored on a booked seat
type Passenger struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
}

// BookingRequest represents a ticket booking request
type BookingRequest struct {
	PassengerName   string       `json:"passenger_name" binding:"required"`
	PassengerAge    int          `json:"passenger_age" binding:"required,min=1"`
	PassengerGender string       `json:"passenger_gender" binding:"required,oneof=Male Female Other"`
	SeatType        SeatCategory `json:"seat_type" binding:"required,oneof=window aisle middle"`
}

// Passenger returns the passenger details of the request
func (r BookingRequest) Passenger() Passenger {
	return Passenger{
		Name:   r.PassengerName,
		Age:    r.PassengerAge,
		Gender: r.PassengerGender,
	}
}

// BookingResponse represents a booking result
type BookingResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	TrainNumber string `json:"train_number,omitempty"`
	SeatNumber  int    `json:"seat_number,omitempty"`
}
