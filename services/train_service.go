package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"railway-reservation/models"
)

// CatalogService manages train records and keeps their seat inventories in step
type CatalogService struct {
	trains    TrainStore
	inventory *InventoryService
}

// NewCatalogService creates a catalog backed by trains that materializes
// seat inventories through inventory
func NewCatalogService(trains TrainStore, inventory *InventoryService) *CatalogService {
	return &CatalogService{trains: trains, inventory: inventory}
}

// AddTrain registers a train and creates its seat inventory
func (s *CatalogService) AddTrain(ctx context.Context, req models.AddTrainRequest) (*models.Train, error) {
	train, err := newTrain(req)
	if err != nil {
		return nil, err
	}

	if err := s.trains.CreateTrain(ctx, train); err != nil {
		return nil, err
	}

	if err := s.inventory.CreateInventory(ctx, train.Number); err != nil {
		// a train never outlives a failed inventory
		if delErr := s.trains.DeleteTrain(ctx, train.Number); delErr != nil {
			log.Printf("Failed to remove train %s after inventory error: %v", train.Number, delErr)
		}
		return nil, fmt.Errorf("failed to create seat inventory: %w", err)
	}

	log.Printf("Train added: %s (%s) %s -> %s on %s",
		train.Number, train.Name, train.StartDestination, train.EndDestination, train.DepartureDate)

	return &train, nil
}

// SearchTrain finds a train by its exact number
func (s *CatalogService) SearchTrain(ctx context.Context, number string) (*models.Train, error) {
	number, err := normalizeTrainNumber(number)
	if err != nil {
		return nil, err
	}
	return s.trains.GetTrain(ctx, number)
}

// FindTrainsByRoute returns trains whose endpoints match exactly
func (s *CatalogService) FindTrainsByRoute(ctx context.Context, start, end string) ([]models.Train, error) {
	if start == "" || end == "" {
		return nil, models.ValidationError("both start and end destinations are required")
	}

	trains, err := s.trains.FindTrainsByRoute(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("error searching trains: %w", err)
	}
	return nonNil(trains), nil
}

// ListTrains returns every registered train in insertion order
func (s *CatalogService) ListTrains(ctx context.Context) ([]models.Train, error) {
	trains, err := s.trains.ListTrains(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing trains: %w", err)
	}
	return nonNil(trains), nil
}

// DeleteTrain removes a train together with its seat inventory.
// Deleting an unknown train is a no-op.
func (s *CatalogService) DeleteTrain(ctx context.Context, number string) error {
	number, err := normalizeTrainNumber(number)
	if err != nil {
		return err
	}

	if err := s.inventory.DestroyInventory(ctx, number); err != nil {
		return fmt.Errorf("failed to destroy seat inventory: %w", err)
	}

	if err := s.trains.DeleteTrain(ctx, number); err != nil {
		return fmt.Errorf("failed to delete train: %w", err)
	}

	log.Printf("Train deleted: %s", number)

	return nil
}

func newTrain(req models.AddTrainRequest) (models.Train, error) {
	train := models.Train{
		Number:           strings.TrimSpace(req.Number),
		Name:             strings.TrimSpace(req.Name),
		StartDestination: strings.TrimSpace(req.StartDestination),
		EndDestination:   strings.TrimSpace(req.EndDestination),
		DepartureDate:    strings.TrimSpace(req.DepartureDate),
	}

	switch {
	case train.Number == "":
		return train, models.ValidationError("train number is required")
	case train.Name == "":
		return train, models.ValidationError("train name is required")
	case train.StartDestination == "" || train.EndDestination == "":
		return train, models.ValidationError("start and end destinations are required")
	}

	if _, err := time.Parse("2006-01-02", train.DepartureDate); err != nil {
		return train, models.ValidationError(fmt.Sprintf("invalid departure date %q, expected YYYY-MM-DD", train.DepartureDate))
	}

	return train, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
