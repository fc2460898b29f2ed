package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"railway-reservation/models"
	"railway-reservation/services"
	"railway-reservation/store/memory"
)

var ctx = context.Background()

func newServices() (*services.CatalogService, *services.InventoryService) {
	store := memory.New()
	inventory := services.NewInventoryService(store)
	return services.NewCatalogService(store, inventory), inventory
}

func addTrainRequest(number string) models.AddTrainRequest {
	return models.AddTrainRequest{
		Number:           number,
		Name:             "Deccan Queen",
		DepartureDate:    "2024-05-01",
		StartDestination: "Pune",
		EndDestination:   "Mumbai",
	}
}

func booking(category models.SeatCategory) models.BookingRequest {
	return models.BookingRequest{
		PassengerName:   "Ravi",
		PassengerAge:    42,
		PassengerGender: "Male",
		SeatType:        category,
	}
}

func TestCatalogService_AddTrain(t *testing.T) {
	t.Run("should register train with 50 free seats", func(t *testing.T) {
		catalog, inventory := newServices()

		train, err := catalog.AddTrain(ctx, addTrainRequest("T100"))
		require.NoError(t, err)
		assert.Equal(t, "T100", train.Number)

		seats, err := inventory.ViewSeats(ctx, "T100")
		require.NoError(t, err)
		require.Len(t, seats, models.SeatsPerTrain)
		for i, seat := range seats {
			assert.Equal(t, i+1, seat.SeatNumber)
			assert.False(t, seat.Booked)
			assert.Empty(t, seat.PassengerName)
			assert.Nil(t, seat.PassengerAge)
			assert.Empty(t, seat.PassengerGender)
		}
	})

	t.Run("should reject duplicate train number", func(t *testing.T) {
		catalog, _ := newServices()
		_, err := catalog.AddTrain(ctx, addTrainRequest("T100"))
		require.NoError(t, err)

		_, err = catalog.AddTrain(ctx, addTrainRequest("T100"))

		assert.ErrorIs(t, err, models.ErrDuplicateTrain)
		assert.ErrorIs(t, err, models.ErrIntegrityViolation)
	})

	t.Run("should validate request", func(t *testing.T) {
		catalog, _ := newServices()
		invalid := []func(*models.AddTrainRequest){
			func(r *models.AddTrainRequest) { r.Number = "  " },
			func(r *models.AddTrainRequest) { r.Name = "" },
			func(r *models.AddTrainRequest) { r.StartDestination = "" },
			func(r *models.AddTrainRequest) { r.DepartureDate = "01/05/2024" },
		}
		for _, mutate := range invalid {
			req := addTrainRequest("T100")
			mutate(&req)

			_, err := catalog.AddTrain(ctx, req)

			assert.ErrorIs(t, err, models.ValidationError(""))
		}
	})
}

func TestCatalogService_Queries(t *testing.T) {
	catalog, _ := newServices()
	for _, number := range []string{"T100", "T200"} {
		_, err := catalog.AddTrain(ctx, addTrainRequest(number))
		require.NoError(t, err)
	}
	other := addTrainRequest("T300")
	other.EndDestination = "Nagpur"
	_, err := catalog.AddTrain(ctx, other)
	require.NoError(t, err)

	t.Run("should search by number", func(t *testing.T) {
		train, err := catalog.SearchTrain(ctx, "T200")
		require.NoError(t, err)
		assert.Equal(t, "Deccan Queen", train.Name)

		_, err = catalog.SearchTrain(ctx, "T999")
		assert.ErrorIs(t, err, models.ErrTrainNotFound)
	})

	t.Run("should find trains by route", func(t *testing.T) {
		trains, err := catalog.FindTrainsByRoute(ctx, "Pune", "Mumbai")
		require.NoError(t, err)
		require.Len(t, trains, 2)
		assert.Equal(t, "T100", trains[0].Number)

		trains, err = catalog.FindTrainsByRoute(ctx, "pune", "mumbai")
		require.NoError(t, err)
		assert.Empty(t, trains)
		assert.NotNil(t, trains)
	})

	t.Run("should list trains in insertion order", func(t *testing.T) {
		trains, err := catalog.ListTrains(ctx)
		require.NoError(t, err)
		require.Len(t, trains, 3)
		assert.Equal(t, []string{"T100", "T200", "T300"}, []string{trains[0].Number, trains[1].Number, trains[2].Number})
	})
}

func TestCatalogService_DeleteTrain(t *testing.T) {
	t.Run("should remove train and its bookings", func(t *testing.T) {
		catalog, inventory := newServices()
		_, err := catalog.AddTrain(ctx, addTrainRequest("T100"))
		require.NoError(t, err)
		_, err = inventory.BookTicket(ctx, "T100", booking(models.SeatWindow))
		require.NoError(t, err)

		require.NoError(t, catalog.DeleteTrain(ctx, "T100"))

		_, err = catalog.SearchTrain(ctx, "T100")
		assert.ErrorIs(t, err, models.ErrTrainNotFound)
		seats, err := inventory.ViewSeats(ctx, "T100")
		require.NoError(t, err)
		assert.Empty(t, seats)
	})

	t.Run("should ignore unknown train", func(t *testing.T) {
		catalog, _ := newServices()

		assert.NoError(t, catalog.DeleteTrain(ctx, "T404"))
	})

	t.Run("should allow re-adding a deleted train number", func(t *testing.T) {
		catalog, inventory := newServices()
		_, err := catalog.AddTrain(ctx, addTrainRequest("T100"))
		require.NoError(t, err)
		require.NoError(t, catalog.DeleteTrain(ctx, "T100"))

		_, err = catalog.AddTrain(ctx, addTrainRequest("T100"))
		require.NoError(t, err)

		seats, err := inventory.ViewSeats(ctx, "T100")
		require.NoError(t, err)
		assert.Len(t, seats, models.SeatsPerTrain)
	})
}

func TestInventoryService_CreateInventory(t *testing.T) {
	catalog, inventory := newServices()
	_, err := catalog.AddTrain(ctx, addTrainRequest("T100"))
	require.NoError(t, err)

	assert.ErrorIs(t, inventory.CreateInventory(ctx, "T100"), models.ErrInventoryExists)
	assert.ErrorIs(t, inventory.CreateInventory(ctx, "T404"), models.ErrTrainNotFound)
}

func TestInventoryService_BookTicket(t *testing.T) {
	t.Run("should book lowest free seat of category", func(t *testing.T) {
		catalog, inventory := newServices()
		_, err := catalog.AddTrain(ctx, addTrainRequest("T100"))
		require.NoError(t, err)

		var window []int
		for i := 0; i < 3; i++ {
			seatNumber, err := inventory.BookTicket(ctx, "T100", booking(models.SeatWindow))
			require.NoError(t, err)
			window = append(window, seatNumber)
		}
		aisle, err := inventory.BookTicket(ctx, "T100", booking(models.SeatAisle))
		require.NoError(t, err)

		assert.Equal(t, []int{4, 5, 9}, window)
		assert.Equal(t, 2, aisle)
	})

	t.Run("should fail when category is exhausted", func(t *testing.T) {
		catalog, inventory := newServices()
		_, err := catalog.AddTrain(ctx, addTrainRequest("T100"))
		require.NoError(t, err)
		for i := 0; i < 10; i++ {
			_, err := inventory.BookTicket(ctx, "T100", booking(models.SeatMiddle))
			require.NoError(t, err)
		}

		_, err = inventory.BookTicket(ctx, "T100", booking(models.SeatMiddle))

		assert.ErrorIs(t, err, models.ErrNoAvailableSeat)
	})

	t.Run("should validate request", func(t *testing.T) {
		_, inventory := newServices()
		invalid := []func(*models.BookingRequest){
			func(r *models.BookingRequest) { r.PassengerName = " " },
			func(r *models.BookingRequest) { r.PassengerAge = 0 },
			func(r *models.BookingRequest) { r.PassengerGender = "unknown" },
			func(r *models.BookingRequest) { r.SeatType = "sleeper" },
		}
		for _, mutate := range invalid {
			req := booking(models.SeatAisle)
			mutate(&req)

			_, err := inventory.BookTicket(ctx, "T100", req)

			assert.ErrorIs(t, err, models.ValidationError(""))
		}
	})

	t.Run("should return not found for unknown train", func(t *testing.T) {
		_, inventory := newServices()

		_, err := inventory.BookTicket(ctx, "T404", booking(models.SeatAisle))

		assert.ErrorIs(t, err, models.ErrTrainNotFound)
	})

	t.Run("should give every concurrent caller a distinct seat", func(t *testing.T) {
		catalog, inventory := newServices()
		_, err := catalog.AddTrain(ctx, addTrainRequest("T100"))
		require.NoError(t, err)
		const callers = 50 // 20 aisle seats

		results := make(chan error, callers)
		seats := make(chan int, callers)
		var wg sync.WaitGroup
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				seatNumber, err := inventory.BookTicket(ctx, "T100", booking(models.SeatAisle))
				results <- err
				if err == nil {
					seats <- seatNumber
				}
			}()
		}
		wg.Wait()
		close(results)
		close(seats)

		var failures int
		for err := range results {
			if errors.Is(err, models.ErrNoAvailableSeat) {
				failures++
			}
		}
		unique := map[int]bool{}
		for seatNumber := range seats {
			assert.Equal(t, models.SeatAisle, models.CategorizeSeat(seatNumber))
			assert.False(t, unique[seatNumber], "seat %d booked twice", seatNumber)
			unique[seatNumber] = true
		}
		assert.Len(t, unique, 20)
		assert.Equal(t, callers-20, failures)
	})
}

func TestInventoryService_CancelTicket(t *testing.T) {
	catalog, inventory := newServices()
	_, err := catalog.AddTrain(ctx, addTrainRequest("T100"))
	require.NoError(t, err)
	seatNumber, err := inventory.BookTicket(ctx, "T100", booking(models.SeatWindow))
	require.NoError(t, err)

	t.Run("should clear booked seat", func(t *testing.T) {
		require.NoError(t, inventory.CancelTicket(ctx, "T100", seatNumber))

		seats, err := inventory.ViewSeats(ctx, "T100")
		require.NoError(t, err)
		seat := seats[seatNumber-1]
		assert.False(t, seat.Booked)
		assert.Empty(t, seat.PassengerName)
		assert.Nil(t, seat.PassengerAge)
		assert.Empty(t, seat.PassengerGender)
	})

	t.Run("should accept already free seat", func(t *testing.T) {
		assert.NoError(t, inventory.CancelTicket(ctx, "T100", seatNumber))
	})

	t.Run("should reject out of range seat", func(t *testing.T) {
		assert.ErrorIs(t, inventory.CancelTicket(ctx, "T100", 0), models.ErrSeatOutOfRange)
		assert.ErrorIs(t, inventory.CancelTicket(ctx, "T100", 51), models.ErrSeatOutOfRange)
	})

	t.Run("should return not found for unknown train", func(t *testing.T) {
		assert.ErrorIs(t, inventory.CancelTicket(ctx, "T404", 1), models.ErrTrainNotFound)
	})
}

func TestInventoryService_Availability(t *testing.T) {
	catalog, inventory := newServices()
	_, err := catalog.AddTrain(ctx, addTrainRequest("T100"))
	require.NoError(t, err)
	_, err = inventory.BookTicket(ctx, "T100", booking(models.SeatWindow))
	require.NoError(t, err)
	_, err = inventory.BookTicket(ctx, "T100", booking(models.SeatMiddle))
	require.NoError(t, err)

	availability, err := inventory.Availability(ctx, "T100")
	require.NoError(t, err)

	assert.Equal(t, 50, availability.Total)
	assert.Equal(t, 2, availability.Booked)
	assert.Equal(t, 48, availability.Free)
	assert.Equal(t, map[models.SeatCategory]int{
		models.SeatWindow: 19,
		models.SeatAisle:  20,
		models.SeatMiddle: 9,
	}, availability.FreeByType)

	empty, err := inventory.Availability(ctx, "T404")
	require.NoError(t, err)
	assert.Zero(t, empty.Total)
}

func TestInventoryService_TrimsTrainNumber(t *testing.T) {
	catalog, inventory := newServices()
	_, err := catalog.AddTrain(ctx, addTrainRequest("T100"))
	require.NoError(t, err)

	train, err := catalog.SearchTrain(ctx, " T100 ")
	require.NoError(t, err)
	assert.Equal(t, "T100", train.Number)

	seatNumber, err := inventory.BookTicket(ctx, " T100", booking(models.SeatWindow))
	require.NoError(t, err)
	assert.Equal(t, 4, seatNumber)

	seats, err := inventory.ViewSeats(ctx, "T100 ")
	require.NoError(t, err)
	require.Len(t, seats, models.SeatsPerTrain)
	assert.True(t, seats[3].Booked)

	availability, err := inventory.Availability(ctx, " T100 ")
	require.NoError(t, err)
	assert.Equal(t, "T100", availability.TrainNumber)
	assert.Equal(t, 1, availability.Booked)

	require.NoError(t, inventory.CancelTicket(ctx, "\tT100", seatNumber))
	assert.ErrorIs(t, inventory.CreateInventory(ctx, " T100 "), models.ErrInventoryExists)
	assert.ErrorIs(t, inventory.CancelTicket(ctx, "  ", 1), models.ValidationError(""))
}
