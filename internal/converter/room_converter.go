package converter

import (
	"fmt"

	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/domain/entity"
	"hospital-dashboard/internal/service"
	"hospital-dashboard/pkg/currency"
)

var roomTypeLabels = map[entity.RoomType]string{
	entity.RoomTypeGeneral:   "General Ward",
	entity.RoomTypeCabin:     "Cabin",
	entity.RoomTypeICU:       "ICU",
	entity.RoomTypeEmergency: "Emergency",
	entity.RoomTypeVIP:       "VIP Suite",
	entity.RoomTypeNICU:      "NICU",
}

// RoomTypeLabel returns the display label, or the raw value for unknown types.
func RoomTypeLabel(t entity.RoomType) string {
	if label, ok := roomTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// RoomToResponse converts a Room entity to RoomResponse DTO
func RoomToResponse(room *entity.Room, money *currency.Formatter) *dto.RoomResponse {
	if room == nil {
		return nil
	}

	response := &dto.RoomResponse{
		ID:           room.ID,
		Number:       room.Number,
		Floor:        room.Floor,
		Type:         string(room.Type),
		TypeLabel:    RoomTypeLabel(room.Type),
		Status:       string(room.Status),
		Capacity:     room.Capacity,
		Occupied:     room.Occupied,
		FreeBeds:     room.FreeBeds(),
		PricePerHour: room.PricePerHour,
		PricePerDay:  room.PricePerDay,
		PricePerWeek: room.PricePerWeek,
		PriceDisplay: money.Format(room.PricePerDay) + "/day",
		Features:     append([]string{}, room.Features...),
		ACType:       string(room.ACType),
	}

	if ratio, ok := room.OccupancyRatio(); ok {
		pct := int(ratio*100 + 0.5)
		response.OccupancyPercent = &pct
	}

	if room.Admission != nil {
		bill := room.Admission.CurrentBill
		response.PatientName = room.Admission.PatientName
		response.AdmissionDate = room.Admission.AdmissionDate
		response.CurrentBill = &bill
		response.BillDisplay = money.Format(bill)
	}

	return response
}

// RoomsToResponses converts a slice of Room entities to slice of RoomResponse DTOs
func RoomsToResponses(rooms []entity.Room, money *currency.Formatter) []dto.RoomResponse {
	responses := make([]dto.RoomResponse, len(rooms))
	for i := range rooms {
		responses[i] = *RoomToResponse(&rooms[i], money)
	}
	return responses
}

// RoomSummaryToResponse flattens the summary, floors and type chips into one DTO
func RoomSummaryToResponse(summary service.RoomSummary, floors []service.FloorOccupancy, typeCounts map[entity.RoomType]int) *dto.RoomSummaryResponse {
	response := &dto.RoomSummaryResponse{
		Total:               summary.Total,
		Available:           summary.Count(entity.RoomStatusAvailable),
		Occupied:            summary.Count(entity.RoomStatusOccupied),
		Reserved:            summary.Count(entity.RoomStatusReserved),
		Maintenance:         summary.Count(entity.RoomStatusMaintenance),
		Unrecognized:        summary.Unrecognized,
		TotalBeds:           summary.TotalBeds,
		OccupiedBeds:        summary.OccupiedBeds,
		BedOccupancy:        summary.BedOccupancy,
		BedOccupancyDisplay: fmt.Sprintf("%d%%", summary.BedOccupancy),
		Floors:              make([]dto.FloorOccupancyResponse, len(floors)),
		TypeCounts:          make([]dto.RoomTypeCountResponse, 0, len(typeCounts)),
	}

	for i, f := range floors {
		response.Floors[i] = dto.FloorOccupancyResponse{
			Floor:    f.Floor,
			Label:    floorLabel(f.Floor),
			Rooms:    f.Rooms,
			Occupied: f.Occupied,
			Percent:  f.Percent,
			Level:    occupancyLevel(f.Percent),
		}
	}

	for _, t := range entity.RoomTypes() {
		response.TypeCounts = append(response.TypeCounts, dto.RoomTypeCountResponse{
			Type:  string(t),
			Label: RoomTypeLabel(t),
			Count: typeCounts[t],
		})
	}

	return response
}

func floorLabel(floor int) string {
	if floor == 0 {
		return "Ground"
	}
	return fmt.Sprintf("Floor %d", floor)
}

func occupancyLevel(percent int) string {
	switch {
	case percent > 80:
		return "high"
	case percent > 50:
		return "medium"
	default:
		return "low"
	}
}

// RentQuoteToResponse converts a rent quote for room into a RentQuoteResponse DTO
func RentQuoteToResponse(room *entity.Room, quote service.RentQuote, money *currency.Formatter) *dto.RentQuoteResponse {
	limit, _ := service.MaxRentDuration(quote.Unit)
	return &dto.RentQuoteResponse{
		RoomID:        room.ID,
		RoomNumber:    room.Number,
		Unit:          string(quote.Unit),
		Duration:      quote.Duration,
		MaxDuration:   limit,
		UnitPrice:     quote.UnitPrice,
		Base:          quote.Base,
		ServiceCharge: quote.ServiceCharge,
		Total:         quote.Total,
		TotalDisplay:  money.FormatDecimal(quote.Total),
	}
}
