package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"railway-reservation/models"
)

// AddTrain registers a new train and its seats
func (h *Handler) AddTrain(c *gin.Context) {
	var req models.AddTrainRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log.Printf("[%s] Add train request: %+v", requestID(c), req)

	train, err := h.Catalog.AddTrain(c.Request.Context(), req)
	if err != nil {
		respondError(c, "adding train", err)
		return
	}

	c.JSON(http.StatusCreated, train)
}

// ListTrains returns all trains, or those on a route when start and end are given
func (h *Handler) ListTrains(c *gin.Context) {
	var query models.RouteQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var (
		trains []models.Train
		err    error
	)
	if query.Start == "" && query.End == "" {
		trains, err = h.Catalog.ListTrains(c.Request.Context())
	} else {
		trains, err = h.Catalog.FindTrainsByRoute(c.Request.Context(), query.Start, query.End)
	}
	if err != nil {
		respondError(c, "listing trains", err)
		return
	}

	c.JSON(http.StatusOK, trains)
}

// GetTrain returns a train by number
func (h *Handler) GetTrain(c *gin.Context) {
	train, err := h.Catalog.SearchTrain(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondError(c, "getting train", err)
		return
	}

	c.JSON(http.StatusOK, train)
}

// DeleteTrain removes a train and all of its seats
func (h *Handler) DeleteTrain(c *gin.Context) {
	number := c.Param("number")

	if err := h.Catalog.DeleteTrain(c.Request.Context(), number); err != nil {
		respondError(c, "deleting train", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Train %s deleted successfully", number),
	})
}
