package models_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"railway-reservation/models"
)

func TestCategorizeSeat(t *testing.T) {
	t.Run("should match known seats", func(t *testing.T) {
		cases := map[int]models.SeatCategory{
			4:  models.SeatWindow,
			5:  models.SeatWindow,
			9:  models.SeatWindow,
			10: models.SeatWindow,
			7:  models.SeatAisle,
			2:  models.SeatAisle,
			16: models.SeatAisle,
			11: models.SeatMiddle,
			1:  models.SeatMiddle,
			48: models.SeatMiddle,
		}
		for seat, expected := range cases {
			assert.Equalf(t, expected, models.CategorizeSeat(seat), "seat %d", seat)
		}
	})

	t.Run("should assign exactly one stable category to every seat", func(t *testing.T) {
		for n := 1; n <= models.SeatsPerTrain; n++ {
			category := models.CategorizeSeat(n)
			assert.True(t, category.Valid())
			assert.Equal(t, category, models.CategorizeSeat(n))
		}
	})

	t.Run("should split 50 seats into 20 window, 20 aisle and 10 middle", func(t *testing.T) {
		counts := map[models.SeatCategory]int{}
		for n := 1; n <= models.SeatsPerTrain; n++ {
			counts[models.CategorizeSeat(n)]++
		}
		assert.Equal(t, 20, counts[models.SeatWindow])
		assert.Equal(t, 20, counts[models.SeatAisle])
		assert.Equal(t, 10, counts[models.SeatMiddle])
	})
}

func TestNewInventory(t *testing.T) {
	seats := models.NewInventory("T100")

	require.Len(t, seats, models.SeatsPerTrain)
	for i, seat := range seats {
		assert.Equal(t, "T100", seat.TrainNumber)
		assert.Equal(t, i+1, seat.SeatNumber)
		assert.Equal(t, models.CategorizeSeat(i+1), seat.SeatType)
		assert.False(t, seat.Booked)
		assert.Empty(t, seat.PassengerName)
		assert.Nil(t, seat.PassengerAge)
		assert.Empty(t, seat.PassengerGender)
	}
}

func TestSeatCategory_Valid(t *testing.T) {
	assert.True(t, models.SeatAisle.Valid())
	assert.False(t, models.SeatCategory("sleeper").Valid())
	assert.False(t, models.SeatCategory("").Valid())
}

func TestErrors(t *testing.T) {
	assert.ErrorIs(t, models.ErrDuplicateTrain, models.ErrIntegrityViolation)
	assert.ErrorIs(t, models.ErrInventoryExists, models.ErrIntegrityViolation)
	assert.ErrorIs(t, models.ErrSeatOutOfRange, models.ErrIntegrityViolation)
	assert.NotErrorIs(t, models.ErrNoAvailableSeat, models.ErrIntegrityViolation)
	assert.True(t, errors.Is(models.ValidationError("empty name"), models.ValidationError("")))
}
