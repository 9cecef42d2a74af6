package usecase

import (
	"context"
	"errors"
	"io"
	"sync/atomic"

	"hospital-dashboard/internal/domain/entity"
	"hospital-dashboard/internal/domain/repository"
	"hospital-dashboard/pkg/currency"

	"github.com/sirupsen/logrus"
)

var errStore = errors.New("store unavailable")

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

var testMoney = currency.NewFormatter(currency.DefaultSymbol)

// --- MockRoomRepository ---
var _ repository.RoomRepository = (*MockRoomRepository)(nil)

type MockRoomRepository struct {
	FindAllFunc  func(ctx context.Context) ([]entity.Room, error)
	FindByIDFunc func(ctx context.Context, id string) (*entity.Room, error)

	FindAllCallCount int32
}

func (m *MockRoomRepository) FindAll(ctx context.Context) ([]entity.Room, error) {
	atomic.AddInt32(&m.FindAllCallCount, 1)
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockRoomRepository) FindByID(ctx context.Context, id string) (*entity.Room, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

// roomStore serves FindAll and FindByID from rooms.
func roomStore(rooms []entity.Room) *MockRoomRepository {
	return &MockRoomRepository{
		FindAllFunc: func(ctx context.Context) ([]entity.Room, error) {
			out := make([]entity.Room, len(rooms))
			for i := range rooms {
				out[i] = rooms[i].Clone()
			}
			return out, nil
		},
		FindByIDFunc: func(ctx context.Context, id string) (*entity.Room, error) {
			for i := range rooms {
				if rooms[i].ID == id {
					r := rooms[i].Clone()
					return &r, nil
				}
			}
			return nil, nil
		},
	}
}

// --- MockDoctorRepository ---
var _ repository.DoctorRepository = (*MockDoctorRepository)(nil)

type MockDoctorRepository struct {
	FindAllFunc  func(ctx context.Context) ([]entity.Doctor, error)
	FindByIDFunc func(ctx context.Context, id string) (*entity.Doctor, error)
}

func (m *MockDoctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, id string) (*entity.Doctor, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func doctorStore(doctors []entity.Doctor) *MockDoctorRepository {
	return &MockDoctorRepository{
		FindAllFunc: func(ctx context.Context) ([]entity.Doctor, error) {
			out := make([]entity.Doctor, len(doctors))
			for i := range doctors {
				out[i] = doctors[i].Clone()
			}
			return out, nil
		},
		FindByIDFunc: func(ctx context.Context, id string) (*entity.Doctor, error) {
			for i := range doctors {
				if doctors[i].ID == id {
					d := doctors[i].Clone()
					return &d, nil
				}
			}
			return nil, nil
		},
	}
}

// --- MockAppointmentRepository ---
var _ repository.AppointmentRepository = (*MockAppointmentRepository)(nil)

type MockAppointmentRepository struct {
	FindAllFunc func(ctx context.Context) ([]entity.Appointment, error)
}

func (m *MockAppointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func appointmentStore(appointments []entity.Appointment) *MockAppointmentRepository {
	return &MockAppointmentRepository{
		FindAllFunc: func(ctx context.Context) ([]entity.Appointment, error) {
			return append([]entity.Appointment(nil), appointments...), nil
		},
	}
}

// --- MockDashboardRepository ---
var _ repository.DashboardRepository = (*MockDashboardRepository)(nil)

type MockDashboardRepository struct {
	GetStatsFunc func(ctx context.Context) (*entity.DashboardStats, error)
}

func (m *MockDashboardRepository) GetStats(ctx context.Context) (*entity.DashboardStats, error) {
	if m.GetStatsFunc != nil {
		return m.GetStatsFunc(ctx)
	}
	return nil, nil
}

// --- fixtures ---

func fixtureRooms() []entity.Room {
	return []entity.Room{
		{ID: "R1", Number: "2", Floor: 1, Type: entity.RoomTypeGeneral, Status: entity.RoomStatusOccupied,
			Capacity: 4, Occupied: 3, PricePerHour: 50, PricePerDay: 800, PricePerWeek: 5000,
			Admission: &entity.Admission{PatientName: "Rahim Uddin", CurrentBill: 4800}},
		{ID: "R2", Number: "10", Floor: 1, Type: entity.RoomTypeICU, Status: entity.RoomStatusAvailable,
			Capacity: 1, Occupied: 0, PricePerHour: 500, PricePerDay: 10000, PricePerWeek: 60000},
		{ID: "R3", Number: "3", Floor: 2, Type: entity.RoomTypeEmergency, Status: entity.RoomStatusMaintenance,
			Capacity: 2, Occupied: 0, PricePerHour: 300, PricePerDay: 5000, PricePerWeek: 30000},
	}
}

func fixtureDoctors() []entity.Doctor {
	return []entity.Doctor{
		{ID: "D1", Name: "Dr. Anisur Rahman", Specialization: "Cardiologist", Department: "Cardiology",
			Available: true, ConsultationFee: 1500, EmergencyFee: 3000, TodayAppointments: 18, MaxAppointments: 25},
		{ID: "D2", Name: "Dr. Kamal Hossain", Specialization: "Neurologist", Department: "Neurology",
			Available: false, ConsultationFee: 2000, EmergencyFee: 4000, TodayAppointments: 20, MaxAppointments: 20},
		{ID: "D3", Name: "Dr. Farhana Islam", Specialization: "Cardiac Surgeon", Department: "Cardiology",
			Available: true, ConsultationFee: 1800, EmergencyFee: 3500},
	}
}

func fixtureAppointments() []entity.Appointment {
	return []entity.Appointment{
		{ID: "A1", DoctorID: "D1", Status: entity.AppointmentStatusCompleted, PaymentStatus: entity.PaymentStatusPaid, Fee: 1500},
		{ID: "A2", DoctorID: "D2", Status: entity.AppointmentStatusScheduled, PaymentStatus: entity.PaymentStatusPending, Fee: 2000},
		{ID: "A3", DoctorID: "D1", Status: entity.AppointmentStatusInProgress, PaymentStatus: entity.PaymentStatusPartial, Fee: 3000},
		{ID: "A4", DoctorID: "D3", Status: entity.AppointmentStatusCancelled, PaymentStatus: entity.PaymentStatusOverdue, Fee: 1800},
		{ID: "A5", DoctorID: "D1", Status: entity.AppointmentStatusScheduled, PaymentStatus: entity.PaymentStatusPaid, Fee: 1500},
	}
}
