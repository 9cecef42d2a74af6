package service

import (
	"cmp"
	"slices"

	"hospital-dashboard/internal/domain/entity"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// MatchRoom reports whether room passes the text query and both categorical selectors.
// A room without an admitted patient never matches on patient name.
func MatchRoom(room *entity.Room, filter entity.RoomFilter) bool {
	return newRoomMatcher(filter).match(room)
}

// FilterRooms returns the rooms accepted by filter, in store order.
// The result is always a fresh slice, empty rather than nil when nothing matches.
func FilterRooms(rooms []entity.Room, filter entity.RoomFilter) []entity.Room {
	m := newRoomMatcher(filter)
	result := make([]entity.Room, 0, len(rooms))
	for i := range rooms {
		if m.match(&rooms[i]) {
			result = append(result, rooms[i])
		}
	}
	return result
}

// SortRooms returns a sorted copy of rooms; the argument is left untouched.
//
//   - number: locale string order of the display number, so "10" precedes "2"
//   - price: daily price, highest first
//   - occupancy: occupied/capacity, highest first; rooms without capacity last
//
// Any other key falls back to number.
func SortRooms(rooms []entity.Room, key entity.RoomSortKey) []entity.Room {
	sorted := slices.Clone(rooms)
	if sorted == nil {
		sorted = []entity.Room{}
	}

	switch key {
	case entity.RoomSortByPrice:
		slices.SortStableFunc(sorted, compareRoomPrice)
	case entity.RoomSortByOccupancy:
		slices.SortStableFunc(sorted, compareRoomOccupancy)
	default:
		col := collate.New(language.English)
		slices.SortStableFunc(sorted, func(a, b entity.Room) int {
			return col.CompareString(a.Number, b.Number)
		})
	}
	return sorted
}

// QueryRooms filters then sorts.
func QueryRooms(rooms []entity.Room, filter entity.RoomFilter, key entity.RoomSortKey) []entity.Room {
	return SortRooms(FilterRooms(rooms, filter), key)
}

// NextRoomSortKey cycles number -> price -> occupancy -> number.
func NextRoomSortKey(key entity.RoomSortKey) entity.RoomSortKey {
	switch key {
	case entity.RoomSortByNumber:
		return entity.RoomSortByPrice
	case entity.RoomSortByPrice:
		return entity.RoomSortByOccupancy
	default:
		return entity.RoomSortByNumber
	}
}

func compareRoomPrice(a, b entity.Room) int {
	return cmp.Compare(b.PricePerDay, a.PricePerDay)
}

func compareRoomOccupancy(a, b entity.Room) int {
	ra, okA := a.OccupancyRatio()
	rb, okB := b.OccupancyRatio()
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return 1
	case !okB:
		return -1
	}
	return cmp.Compare(rb, ra)
}

type roomMatcher struct {
	text   *textMatcher
	filter entity.RoomFilter
}

func newRoomMatcher(filter entity.RoomFilter) *roomMatcher {
	return &roomMatcher{text: newTextMatcher(filter.Query), filter: filter}
}

func (m *roomMatcher) match(room *entity.Room) bool {
	return m.matchText(room) &&
		matchesCategory(m.filter.Type, string(room.Type)) &&
		matchesCategory(m.filter.Status, string(room.Status))
}

func (m *roomMatcher) matchText(room *entity.Room) bool {
	if m.text.empty() || m.text.matchFold(room.Number) {
		return true
	}
	name, ok := room.PatientName()
	return ok && m.text.matchFold(name)
}
