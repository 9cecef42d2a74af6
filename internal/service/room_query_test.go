package service

import (
	"strings"
	"testing"

	"hospital-dashboard/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterRooms_EmptyFilterKeepsEverything(t *testing.T) {
	rooms := testRooms()

	for _, filter := range []entity.RoomFilter{
		{},
		{Query: "", Type: entity.FilterAll, Status: entity.FilterAll},
	} {
		got := FilterRooms(rooms, filter)
		assert.Equal(t, rooms, got)
	}
}

func TestFilterRooms_QueryMatchesNumberOrPatient(t *testing.T) {
	rooms := testRooms()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "number prefix", query: "10", want: []string{"101", "102"}},
		{name: "patient name any case", query: "FATEMA", want: []string{"201"}},
		{name: "patient substring", query: "uddin", want: []string{"101"}},
		{name: "letter in number", query: "g0", want: []string{"G01"}},
		{name: "no match", query: "zzz", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterRooms(rooms, entity.RoomFilter{Query: tt.query})
			assert.Equal(t, tt.want, roomNumbers(got))
		})
	}
}

func TestFilterRooms_QueryOnlyMatchesDesignatedFields(t *testing.T) {
	rooms := testRooms()
	query := "patient"

	for _, r := range FilterRooms(rooms, entity.RoomFilter{Query: query}) {
		name, ok := r.PatientName()
		hit := strings.Contains(strings.ToLower(r.Number), query) ||
			(ok && strings.Contains(strings.ToLower(name), query))
		assert.True(t, hit, "room %s matched without a field containing %q", r.ID, query)
	}
}

func TestFilterRooms_NoPatientNeverMatchesOnName(t *testing.T) {
	room := newRoom("R9", "501", entity.RoomTypeCabin, entity.RoomStatusAvailable, 0, 1)

	assert.False(t, MatchRoom(&room, entity.RoomFilter{Query: "patient"}))
	assert.True(t, MatchRoom(&room, entity.RoomFilter{Query: "50"}))
}

func TestFilterRooms_CategoriesAreExact(t *testing.T) {
	rooms := testRooms()

	got := FilterRooms(rooms, entity.RoomFilter{Type: "ic"})
	assert.Empty(t, got)

	got = FilterRooms(rooms, entity.RoomFilter{Type: string(entity.RoomTypeICU)})
	assert.Equal(t, []string{"201"}, roomNumbers(got))

	got = FilterRooms(rooms, entity.RoomFilter{Status: string(entity.RoomStatusOccupied), Query: "rahim"})
	assert.Equal(t, []string{"101"}, roomNumbers(got))
}

func TestFilterRooms_EmptyResultIsNotNil(t *testing.T) {
	got := FilterRooms(testRooms(), entity.RoomFilter{Status: "nothing"})
	require.NotNil(t, got)
	assert.Len(t, got, 0)

	got = FilterRooms(nil, entity.RoomFilter{})
	require.NotNil(t, got)
	assert.Len(t, got, 0)
}

func TestSortRooms_NumberIsLexicographic(t *testing.T) {
	rooms := []entity.Room{
		newRoom("a", "2", entity.RoomTypeGeneral, entity.RoomStatusAvailable, 0, 1),
		newRoom("b", "10", entity.RoomTypeGeneral, entity.RoomStatusAvailable, 0, 1),
		newRoom("c", "3", entity.RoomTypeGeneral, entity.RoomStatusAvailable, 0, 1),
	}

	got := SortRooms(rooms, entity.RoomSortByNumber)

	assert.Equal(t, []string{"10", "2", "3"}, roomNumbers(got))
	assert.Equal(t, []string{"2", "10", "3"}, roomNumbers(rooms), "input must not be reordered")
}

func TestSortRooms_PriceDescending(t *testing.T) {
	var rooms []entity.Room
	for i, price := range []float64{500, 2000, 1000} {
		r := newRoom(string(rune('a'+i)), string(rune('1'+i)), entity.RoomTypeCabin, entity.RoomStatusAvailable, 0, 1)
		r.PricePerDay = price
		rooms = append(rooms, r)
	}

	got := SortRooms(rooms, entity.RoomSortByPrice)

	prices := make([]float64, len(got))
	for i, r := range got {
		prices[i] = r.PricePerDay
	}
	assert.Equal(t, []float64{2000, 1000, 500}, prices)
	assert.Equal(t, 500.0, rooms[0].PricePerDay)
}

func TestSortRooms_OccupancyPutsZeroCapacityLast(t *testing.T) {
	rooms := []entity.Room{
		newRoom("a", "A", entity.RoomTypeGeneral, entity.RoomStatusAvailable, 0, 0),
		newRoom("b", "B", entity.RoomTypeGeneral, entity.RoomStatusOccupied, 1, 4),
		newRoom("c", "C", entity.RoomTypeGeneral, entity.RoomStatusOccupied, 3, 4),
		newRoom("d", "D", entity.RoomTypeGeneral, entity.RoomStatusAvailable, 0, 0),
		newRoom("e", "E", entity.RoomTypeGeneral, entity.RoomStatusOccupied, 2, 2),
	}

	got := SortRooms(rooms, entity.RoomSortByOccupancy)

	require.Len(t, got, len(rooms))
	assert.Equal(t, []string{"E", "C", "B"}, roomNumbers(got[:3]))
	assert.ElementsMatch(t, []string{"A", "D"}, roomNumbers(got[3:]))
}

func TestSortRooms_UnknownKeyFallsBackToNumber(t *testing.T) {
	got := SortRooms(testRooms(), "floor")
	assert.Equal(t, []string{"101", "102", "201", "301", "G01"}, roomNumbers(got))
}

func TestSortRooms_CopyIsDeepEnoughForSlicesHeld(t *testing.T) {
	rooms := testRooms()
	got := SortRooms(rooms, entity.RoomSortByPrice)

	got[0].Number = "changed"
	assert.NotEqual(t, "changed", rooms[0].Number)
}

func TestQueryRooms_FiltersThenSorts(t *testing.T) {
	got := QueryRooms(testRooms(), entity.RoomFilter{Status: string(entity.RoomStatusOccupied)}, entity.RoomSortByOccupancy)
	assert.Equal(t, []string{"201", "101"}, roomNumbers(got))
}

func TestNextRoomSortKey_Cycles(t *testing.T) {
	assert.Equal(t, entity.RoomSortByPrice, NextRoomSortKey(entity.RoomSortByNumber))
	assert.Equal(t, entity.RoomSortByOccupancy, NextRoomSortKey(entity.RoomSortByPrice))
	assert.Equal(t, entity.RoomSortByNumber, NextRoomSortKey(entity.RoomSortByOccupancy))
	assert.Equal(t, entity.RoomSortByNumber, NextRoomSortKey(""))
}
