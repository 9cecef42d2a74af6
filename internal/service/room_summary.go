package service

import (
	"math"
	"slices"

	"hospital-dashboard/internal/domain/entity"
)

// RoomSummary holds the derived counters of the room summary cards.
// It is always computed over the full store, never over a filtered view.
type RoomSummary struct {
	Total        int
	ByStatus     map[entity.RoomStatus]int
	Unrecognized int // rooms whose status is outside the declared set
	TotalBeds    int
	OccupiedBeds int
	BedOccupancy int // percent, 0 when there are no beds
}

// Count returns the tally for status, zero when unseen.
func (s RoomSummary) Count(status entity.RoomStatus) int {
	return s.ByStatus[status]
}

// FloorOccupancy is the share of a floor's rooms whose status is occupied.
type FloorOccupancy struct {
	Floor    int
	Rooms    int
	Occupied int
	Percent  int
}

// SummarizeRooms tallies statuses and beds in one pass.
// Every declared status is present in ByStatus, possibly with zero.
func SummarizeRooms(rooms []entity.Room) RoomSummary {
	summary := RoomSummary{
		Total:    len(rooms),
		ByStatus: make(map[entity.RoomStatus]int, len(entity.RoomStatuses())),
	}
	for _, status := range entity.RoomStatuses() {
		summary.ByStatus[status] = 0
	}

	for _, r := range rooms {
		if r.Status.IsKnown() {
			summary.ByStatus[r.Status]++
		} else {
			summary.Unrecognized++
		}
		summary.TotalBeds += r.Capacity
		summary.OccupiedBeds += r.Occupied
	}

	summary.BedOccupancy = percentOf(summary.OccupiedBeds, summary.TotalBeds)
	return summary
}

// FloorOccupancies reports every floor in floors plus every floor present in rooms,
// ascending. A floor without rooms reports 0%.
func FloorOccupancies(rooms []entity.Room, floors []int) []FloorOccupancy {
	byFloor := make(map[int]*FloorOccupancy)
	get := func(floor int) *FloorOccupancy {
		f, ok := byFloor[floor]
		if !ok {
			f = &FloorOccupancy{Floor: floor}
			byFloor[floor] = f
		}
		return f
	}

	for _, floor := range floors {
		get(floor)
	}
	for _, r := range rooms {
		f := get(r.Floor)
		f.Rooms++
		if r.Status == entity.RoomStatusOccupied {
			f.Occupied++
		}
	}

	result := make([]FloorOccupancy, 0, len(byFloor))
	for _, f := range byFloor {
		f.Percent = percentOf(f.Occupied, f.Rooms)
		result = append(result, *f)
	}
	slices.SortFunc(result, func(a, b FloorOccupancy) int { return a.Floor - b.Floor })
	return result
}

// CountByType returns the per-type chip counts. Every declared type is present.
func CountByType(rooms []entity.Room) map[entity.RoomType]int {
	counts := make(map[entity.RoomType]int, len(entity.RoomTypes()))
	for _, t := range entity.RoomTypes() {
		counts[t] = 0
	}
	for _, r := range rooms {
		if _, ok := counts[r.Type]; ok {
			counts[r.Type]++
		}
	}
	return counts
}

// CriticalRooms returns ICU and emergency rooms in store order.
func CriticalRooms(rooms []entity.Room) []entity.Room {
	critical := make([]entity.Room, 0)
	for _, r := range rooms {
		if r.Type.IsCritical() {
			critical = append(critical, r)
		}
	}
	return critical
}

// percentOf is round(100*part/whole), or 0 when whole is not positive.
func percentOf(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(whole)))
}
