package service

import (
	"errors"

	"hospital-dashboard/internal/domain/entity"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownRentUnit     = errors.New("unknown rent unit, use hour, day or week")
	ErrInvalidRentDuration = errors.New("rent duration is out of range for the unit")
)

// maxRentDuration mirrors the calculator slider bounds.
var maxRentDuration = map[entity.RentUnit]int{
	entity.RentUnitHour: 24,
	entity.RentUnitDay:  30,
	entity.RentUnitWeek: 12,
}

// RentQuote is the rent calculator breakdown.
// ServiceCharge and Total are rounded separately, so Total may differ from
// Base+ServiceCharge by one.
type RentQuote struct {
	Unit          entity.RentUnit
	Duration      int
	UnitPrice     decimal.Decimal
	Base          decimal.Decimal
	ServiceCharge decimal.Decimal
	Total         decimal.Decimal
}

// MaxRentDuration returns the longest duration accepted for unit.
func MaxRentDuration(unit entity.RentUnit) (int, bool) {
	limit, ok := maxRentDuration[unit]
	return limit, ok
}

// CalculateRent prices duration units of room with a service charge at rate.
func CalculateRent(room *entity.Room, unit entity.RentUnit, duration int, rate decimal.Decimal) (RentQuote, error) {
	price, ok := room.Price(unit)
	if !ok {
		return RentQuote{}, ErrUnknownRentUnit
	}
	if limit := maxRentDuration[unit]; duration < 1 || duration > limit {
		return RentQuote{}, ErrInvalidRentDuration
	}

	unitPrice := decimal.NewFromFloat(price)
	base := unitPrice.Mul(decimal.NewFromInt(int64(duration)))

	return RentQuote{
		Unit:          unit,
		Duration:      duration,
		UnitPrice:     unitPrice,
		Base:          base,
		ServiceCharge: base.Mul(rate).Round(0),
		Total:         base.Mul(decimal.NewFromInt(1).Add(rate)).Round(0),
	}, nil
}
