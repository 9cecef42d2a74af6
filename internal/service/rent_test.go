package service

import (
	"testing"

	"hospital-dashboard/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateRent(t *testing.T) {
	room := newRoom("R1", "101", entity.RoomTypeCabin, entity.RoomStatusAvailable, 0, 1)
	room.PricePerHour = 150
	room.PricePerDay = 2500
	room.PricePerWeek = 15000
	rate := decimal.RequireFromString("0.05")

	tests := []struct {
		name     string
		unit     entity.RentUnit
		duration int
		base     string
		service  string
		total    string
	}{
		{name: "hours", unit: entity.RentUnitHour, duration: 5, base: "750", service: "38", total: "788"},
		{name: "days", unit: entity.RentUnitDay, duration: 3, base: "7500", service: "375", total: "7875"},
		{name: "weeks", unit: entity.RentUnitWeek, duration: 12, base: "180000", service: "9000", total: "189000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := CalculateRent(&room, tt.unit, tt.duration, rate)
			require.NoError(t, err)

			assert.Equal(t, tt.unit, quote.Unit)
			assert.True(t, decimal.RequireFromString(tt.base).Equal(quote.Base), "base %s", quote.Base)
			assert.True(t, decimal.RequireFromString(tt.service).Equal(quote.ServiceCharge), "service %s", quote.ServiceCharge)
			assert.True(t, decimal.RequireFromString(tt.total).Equal(quote.Total), "total %s", quote.Total)
		})
	}
}

func TestCalculateRent_RoundsServiceAndTotalSeparately(t *testing.T) {
	room := newRoom("R1", "101", entity.RoomTypeCabin, entity.RoomStatusAvailable, 0, 1)
	room.PricePerHour = 10

	quote, err := CalculateRent(&room, entity.RentUnitHour, 1, decimal.RequireFromString("0.05"))
	require.NoError(t, err)

	// 0.5 rounds up to 1 and 10.5 rounds up to 11
	assert.Equal(t, "1", quote.ServiceCharge.String())
	assert.Equal(t, "11", quote.Total.String())
}

func TestCalculateRent_Errors(t *testing.T) {
	room := newRoom("R1", "101", entity.RoomTypeCabin, entity.RoomStatusAvailable, 0, 1)
	rate := decimal.RequireFromString("0.05")

	_, err := CalculateRent(&room, "month", 1, rate)
	assert.ErrorIs(t, err, ErrUnknownRentUnit)

	_, err = CalculateRent(&room, entity.RentUnitHour, 25, rate)
	assert.ErrorIs(t, err, ErrInvalidRentDuration)

	_, err = CalculateRent(&room, entity.RentUnitDay, 0, rate)
	assert.ErrorIs(t, err, ErrInvalidRentDuration)

	_, err = CalculateRent(&room, entity.RentUnitWeek, 13, rate)
	assert.ErrorIs(t, err, ErrInvalidRentDuration)
}

func TestMaxRentDuration(t *testing.T) {
	limit, ok := MaxRentDuration(entity.RentUnitDay)
	assert.True(t, ok)
	assert.Equal(t, 30, limit)

	_, ok = MaxRentDuration("month")
	assert.False(t, ok)
}
