package repository

import (
	"context"
	"testing"

	"hospital-dashboard/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRooms() []entity.Room {
	return []entity.Room{
		{ID: "R1", Number: "101", Status: entity.RoomStatusOccupied, Capacity: 2, Occupied: 1,
			Features: []string{"Fan"}, Admission: &entity.Admission{PatientName: "Rahim"}},
		{ID: "R2", Number: "102", Status: entity.RoomStatusAvailable, Capacity: 1},
	}
}

func TestRoomRepository_SnapshotsInput(t *testing.T) {
	rooms := seedRooms()
	repo := NewRoomRepository(rooms)

	rooms[0].Number = "changed"
	rooms[0].Features[0] = "changed"
	rooms[0].Admission.PatientName = "changed"

	found, err := repo.FindByID(context.Background(), "R1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "101", found.Number)
	assert.Equal(t, []string{"Fan"}, found.Features)
	assert.Equal(t, "Rahim", found.Admission.PatientName)
}

func TestRoomRepository_ReadsAreIsolated(t *testing.T) {
	repo := NewRoomRepository(seedRooms())
	ctx := context.Background()

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	all[0].Admission.PatientName = "changed"
	all[0].Features = append(all[0].Features[:0], "changed")

	again, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Rahim", again[0].Admission.PatientName)
	assert.Equal(t, []string{"Fan"}, again[0].Features)
}

func TestRoomRepository_FindByIDNotFound(t *testing.T) {
	found, err := NewRoomRepository(seedRooms()).FindByID(context.Background(), "R9")
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestRoomRepository_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRoomRepository(seedRooms()).FindAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDoctorRepository(t *testing.T) {
	repo := NewDoctorRepository([]entity.Doctor{
		{ID: "D1", Name: "Dr. A", Schedule: []entity.DoctorSchedule{{Day: "Saturday", IsActive: true}}},
	})
	ctx := context.Background()

	found, err := repo.FindByID(ctx, "D1")
	require.NoError(t, err)
	require.NotNil(t, found)
	found.Schedule[0].Day = "changed"

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Saturday", all[0].Schedule[0].Day)

	missing, err := repo.FindByID(ctx, "D2")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAppointmentRepository(t *testing.T) {
	repo := NewAppointmentRepository([]entity.Appointment{{ID: "A1"}, {ID: "A2"}})

	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	all[0].ID = "changed"

	again, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "A1", again[0].ID)
	assert.Len(t, again, 2)
}

func TestDashboardRepository(t *testing.T) {
	repo := NewDashboardRepository(entity.DashboardStats{TotalPatients: 10})

	stats, err := repo.GetStats(context.Background())
	require.NoError(t, err)
	stats.TotalPatients = 99

	again, err := repo.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, again.TotalPatients)
}
