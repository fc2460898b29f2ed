package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"railway-reservation/models"
	"railway-reservation/services"
)

const requestIDHeader = "X-Request-ID"

// Handler serves the train catalog and seat inventory over HTTP
type Handler struct {
	Catalog   *services.CatalogService
	Inventory *services.InventoryService
}

// NewHandler creates a Handler with its services
func NewHandler(catalog *services.CatalogService, inventory *services.InventoryService) *Handler {
	return &Handler{Catalog: catalog, Inventory: inventory}
}

// RegisterRoutes mounts all API routes on group
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Train routes
	api.POST("/trains", h.AddTrain)
	api.GET("/trains", h.ListTrains)
	api.GET("/trains/:number", h.GetTrain)
	api.DELETE("/trains/:number", h.DeleteTrain)

	// Seat routes
	api.POST("/trains/:number/inventory", h.CreateInventory)
	api.GET("/trains/:number/seats", h.ViewSeats)
	api.GET("/trains/:number/availability", h.GetAvailability)

	// Booking routes
	api.POST("/trains/:number/bookings", h.BookTicket)
	api.DELETE("/trains/:number/seats/:seat/booking", h.CancelTicket)
}

// RequestID tags every request with an id, reusing the caller's one if present
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDHeader, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func requestID(c *gin.Context) string {
	return c.GetString(requestIDHeader)
}

// respondError maps domain errors to HTTP statuses
func respondError(c *gin.Context, action string, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, models.ValidationError("")), errors.Is(err, models.ErrSeatOutOfRange):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, models.ErrTrainNotFound):
		status, message = http.StatusNotFound, "Train not found"
	case errors.Is(err, models.ErrNoAvailableSeat), errors.Is(err, models.ErrIntegrityViolation):
		status, message = http.StatusConflict, err.Error()
	}

	log.Printf("[%s] Error %s: %v", requestID(c), action, err)
	c.JSON(status, gin.H{"error": message})
}
