package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type RoomListRequest struct {
	Search string `json:"search" validate:"max=100"`
	Type   string `json:"type" validate:"omitempty,oneof=all general cabin icu emergency vip nicu"`
	Status string `json:"status" validate:"omitempty,oneof=all available occupied maintenance reserved"`
	SortBy string `json:"sort_by" validate:"omitempty,oneof=number price occupancy"`
}

type RentQuoteRequest struct {
	RoomID   string `json:"room_id" validate:"required"`
	Unit     string `json:"unit" validate:"required,oneof=hour day week"`
	Duration int    `json:"duration" validate:"required,min=1"`
}

type CreateRoomRequest struct {
	Number       string   `json:"number" validate:"required,max=20"`
	Floor        int      `json:"floor" validate:"gte=0,lte=50"`
	Type         string   `json:"type" validate:"required,oneof=general cabin icu emergency vip nicu"`
	Capacity     int      `json:"capacity" validate:"required,min=1"`
	PricePerHour float64  `json:"price_per_hour" validate:"gt=0"`
	PricePerDay  float64  `json:"price_per_day" validate:"gt=0"`
	PricePerWeek float64  `json:"price_per_week" validate:"gt=0"`
	ACType       string   `json:"ac_type" validate:"required,oneof=AC Non-AC"`
	Features     []string `json:"features" validate:"omitempty,dive,required"`
}

// Response DTOs

type RoomResponse struct {
	ID               string   `json:"id"`
	Number           string   `json:"number"`
	Floor            int      `json:"floor"`
	Type             string   `json:"type"`
	TypeLabel        string   `json:"type_label"`
	Status           string   `json:"status"`
	Capacity         int      `json:"capacity"`
	Occupied         int      `json:"occupied"`
	FreeBeds         int      `json:"free_beds"`
	OccupancyPercent *int     `json:"occupancy_percent"`
	PricePerHour     float64  `json:"price_per_hour"`
	PricePerDay      float64  `json:"price_per_day"`
	PricePerWeek     float64  `json:"price_per_week"`
	PriceDisplay     string   `json:"price_display"`
	Features         []string `json:"features"`
	ACType           string   `json:"ac_type"`
	PatientName      string   `json:"patient_name,omitempty"`
	AdmissionDate    string   `json:"admission_date,omitempty"`
	CurrentBill      *float64 `json:"current_bill,omitempty"`
	BillDisplay      string   `json:"bill_display,omitempty"`
}

type RoomListResponse struct {
	Rooms      []RoomResponse `json:"rooms"`
	Total      int            `json:"total"`
	StoreTotal int            `json:"store_total"`
	SortBy     string         `json:"sort_by"`
	NextSortBy string         `json:"next_sort_by"`
}

type FloorOccupancyResponse struct {
	Floor    int    `json:"floor"`
	Label    string `json:"label"`
	Rooms    int    `json:"rooms"`
	Occupied int    `json:"occupied"`
	Percent  int    `json:"percent"`
	Level    string `json:"level"`
}

type RoomTypeCountResponse struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type RoomSummaryResponse struct {
	Total               int                      `json:"total"`
	Available           int                      `json:"available"`
	Occupied            int                      `json:"occupied"`
	Reserved            int                      `json:"reserved"`
	Maintenance         int                      `json:"maintenance"`
	Unrecognized        int                      `json:"unrecognized"`
	TotalBeds           int                      `json:"total_beds"`
	OccupiedBeds        int                      `json:"occupied_beds"`
	BedOccupancy        int                      `json:"bed_occupancy"`
	BedOccupancyDisplay string                   `json:"bed_occupancy_display"`
	Floors              []FloorOccupancyResponse `json:"floors"`
	TypeCounts          []RoomTypeCountResponse  `json:"type_counts"`
}

type RentQuoteResponse struct {
	RoomID        string          `json:"room_id"`
	RoomNumber    string          `json:"room_number"`
	Unit          string          `json:"unit"`
	Duration      int             `json:"duration"`
	MaxDuration   int             `json:"max_duration"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Base          decimal.Decimal `json:"base"`
	ServiceCharge decimal.Decimal `json:"service_charge"`
	Total         decimal.Decimal `json:"total"`
	TotalDisplay  string          `json:"total_display"`
}

type RoomDraftResponse struct {
	DraftID uuid.UUID    `json:"draft_id"`
	Room    RoomResponse `json:"room"`
}
