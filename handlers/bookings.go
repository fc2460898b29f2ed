package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"railway-reservation/models"
)

// CreateInventory generates the seats of a train
func (h *Handler) CreateInventory(c *gin.Context) {
	number := c.Param("number")

	if err := h.Inventory.CreateInventory(c.Request.Context(), number); err != nil {
		respondError(c, "creating inventory", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": fmt.Sprintf("%d seats created for train %s", models.SeatsPerTrain, number),
	})
}

// ViewSeats returns the seats of a train ordered by seat number
func (h *Handler) ViewSeats(c *gin.Context) {
	seats, err := h.Inventory.ViewSeats(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondError(c, "viewing seats", err)
		return
	}

	c.JSON(http.StatusOK, seats)
}

// GetAvailability returns free and booked seat counts of a train
func (h *Handler) GetAvailability(c *gin.Context) {
	availability, err := h.Inventory.Availability(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondError(c, "getting availability", err)
		return
	}

	c.JSON(http.StatusOK, availability)
}

// BookTicket books the lowest free seat of the requested type
func (h *Handler) BookTicket(c *gin.Context) {
	number := c.Param("number")
	var req models.BookingRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.BookingResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	log.Printf("[%s] Booking request for train %s: %+v", requestID(c), number, req)

	seatNumber, err := h.Inventory.BookTicket(c.Request.Context(), number, req)
	if err != nil {
		respondError(c, "booking ticket", err)
		return
	}

	c.JSON(http.StatusCreated, models.BookingResponse{
		Success:     true,
		Message:     fmt.Sprintf("Ticket booked successfully! Seat Number: %d", seatNumber),
		TrainNumber: number,
		SeatNumber:  seatNumber,
	})
}

// CancelTicket frees a booked seat
func (h *Handler) CancelTicket(c *gin.Context) {
	number := c.Param("number")

	seatNumber, err := strconv.Atoi(c.Param("seat"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid seat number"})
		return
	}

	if err := h.Inventory.CancelTicket(c.Request.Context(), number, seatNumber); err != nil {
		respondError(c, "cancelling ticket", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Ticket for seat %d on train %s cancelled successfully", seatNumber, number),
	})
}
