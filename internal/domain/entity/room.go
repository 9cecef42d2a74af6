package entity

import "slices"

// RoomType is the ward category of a room
type RoomType string

const (
	RoomTypeGeneral   RoomType = "general"
	RoomTypeCabin     RoomType = "cabin"
	RoomTypeICU       RoomType = "icu"
	RoomTypeEmergency RoomType = "emergency"
	RoomTypeVIP       RoomType = "vip"
	RoomTypeNICU      RoomType = "nicu"
)

// RoomTypes returns every room type in display order.
func RoomTypes() []RoomType {
	return []RoomType{RoomTypeGeneral, RoomTypeCabin, RoomTypeICU, RoomTypeEmergency, RoomTypeVIP, RoomTypeNICU}
}

// IsCritical reports whether rooms of this type are shown on the critical care panel.
func (t RoomType) IsCritical() bool {
	return t == RoomTypeICU || t == RoomTypeEmergency
}

// RoomStatus represents the operational status of a room
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
	RoomStatusReserved    RoomStatus = "reserved"
)

// RoomStatuses returns every room status in display order.
func RoomStatuses() []RoomStatus {
	return []RoomStatus{RoomStatusAvailable, RoomStatusOccupied, RoomStatusReserved, RoomStatusMaintenance}
}

// IsKnown reports whether s is one of the declared statuses.
func (s RoomStatus) IsKnown() bool {
	return slices.Contains(RoomStatuses(), s)
}

type ACType string

const (
	ACTypeAC    ACType = "AC"
	ACTypeNonAC ACType = "Non-AC"
)

// Admission holds the patient data carried only by an occupied room.
type Admission struct {
	PatientName   string  `yaml:"patient_name" json:"patient_name" validate:"required"`
	AdmissionDate string  `yaml:"admission_date" json:"admission_date" validate:"omitempty,datetime=2006-01-02"`
	CurrentBill   float64 `yaml:"current_bill" json:"current_bill" validate:"gte=0"`
}

// Room is a bookable room with one or more beds.
// Admission is non-nil exactly when Status is occupied; the seed loader rejects
// records that break this.
type Room struct {
	ID           string     `yaml:"id" json:"id" validate:"required"`
	Number       string     `yaml:"number" json:"number" validate:"required"`
	Floor        int        `yaml:"floor" json:"floor" validate:"gte=0"`
	Type         RoomType   `yaml:"type" json:"type" validate:"oneof=general cabin icu emergency vip nicu"`
	Status       RoomStatus `yaml:"status" json:"status" validate:"oneof=available occupied maintenance reserved"`
	Capacity     int        `yaml:"capacity" json:"capacity" validate:"gt=0"`
	Occupied     int        `yaml:"occupied" json:"occupied" validate:"gte=0,ltefield=Capacity"`
	PricePerHour float64    `yaml:"price_per_hour" json:"price_per_hour" validate:"gt=0"`
	PricePerDay  float64    `yaml:"price_per_day" json:"price_per_day" validate:"gt=0"`
	PricePerWeek float64    `yaml:"price_per_week" json:"price_per_week" validate:"gt=0"`
	Features     []string   `yaml:"features" json:"features"`
	Admission    *Admission `yaml:"admission,omitempty" json:"admission,omitempty" validate:"omitempty"`
	ACType       ACType     `yaml:"ac_type" json:"ac_type" validate:"oneof=AC Non-AC"`
}

// PatientName returns the admitted patient's name, if any.
func (r *Room) PatientName() (string, bool) {
	if r.Admission == nil {
		return "", false
	}
	return r.Admission.PatientName, true
}

// HasConsistentAdmission checks the status/admission correlation.
func (r *Room) HasConsistentAdmission() bool {
	return (r.Status == RoomStatusOccupied) == (r.Admission != nil)
}

// OccupancyRatio returns occupied/capacity. ok is false when capacity is not positive.
func (r *Room) OccupancyRatio() (ratio float64, ok bool) {
	if r.Capacity <= 0 {
		return 0, false
	}
	return float64(r.Occupied) / float64(r.Capacity), true
}

// FreeBeds returns the number of unoccupied beds, never negative.
func (r *Room) FreeBeds() int {
	return max(r.Capacity-r.Occupied, 0)
}

// Clone returns a deep copy so callers cannot reach shared backing arrays.
func (r Room) Clone() Room {
	r.Features = slices.Clone(r.Features)
	if r.Admission != nil {
		admission := *r.Admission
		r.Admission = &admission
	}
	return r
}

// RentUnit is the billing period of the rent calculator
type RentUnit string

const (
	RentUnitHour RentUnit = "hour"
	RentUnitDay  RentUnit = "day"
	RentUnitWeek RentUnit = "week"
)

// Price returns the room's tariff for unit. ok is false for an unknown unit.
func (r *Room) Price(unit RentUnit) (price float64, ok bool) {
	switch unit {
	case RentUnitHour:
		return r.PricePerHour, true
	case RentUnitDay:
		return r.PricePerDay, true
	case RentUnitWeek:
		return r.PricePerWeek, true
	}
	return 0, false
}
