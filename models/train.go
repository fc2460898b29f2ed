package models

// Train represents a scheduled train service
type Train struct {
	Number           string `json:"number" db:"train_number"`
	Name             string `json:"name" db:"train_name"`
	StartDestination string `json:"start_destination" db:"start_destination"`
	EndDestination   string `json:"end_destination" db:"end_destination"`
	DepartureDate    string `json:"departure_date" db:"departure_date"` // YYYY-MM-DD
}

// AddTrainRequest represents a train registration request
type AddTrainRequest struct {
	Number           string `json:"number" binding:"required"`
	Name             string `json:"name" binding:"required"`
	DepartureDate    string `json:"departure_date" binding:"required"`
	StartDestination string `json:"start_destination" binding:"required"`
	EndDestination   string `json:"end_destination" binding:"required"`
}

// RouteQuery represents a search by route endpoints
type RouteQuery struct {
	Start string `form:"start"`
	End   string `form:"end"`
}
