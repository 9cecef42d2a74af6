package entity

// FilterAll is the categorical selector that matches every value.
// The empty string is treated the same way.
const FilterAll = "all"

// RoomSortKey selects the ordering of the room list
type RoomSortKey string

const (
	RoomSortByNumber    RoomSortKey = "number"
	RoomSortByPrice     RoomSortKey = "price"
	RoomSortByOccupancy RoomSortKey = "occupancy"
)

// Availability is the tri-state selector over Doctor.Available
type Availability string

const (
	AvailabilityAll       Availability = "all"
	AvailabilityAvailable Availability = "available"
	AvailabilityBusy      Availability = "busy"
)

// RoomFilter is a domain-level filter for the room list.
// Query is matched against the room number and the admitted patient's name.
type RoomFilter struct {
	Query  string
	Type   string // RoomType or FilterAll
	Status string // RoomStatus or FilterAll
}

// DoctorFilter is a domain-level filter for the doctor directory.
// Query is matched against name, specialization and the Bangla name.
type DoctorFilter struct {
	Query        string
	Department   string // exact department or FilterAll
	Availability Availability
}
