package usecase

import (
	"context"
	"errors"
	"fmt"

	"hospital-dashboard/internal/converter"
	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/domain/repository"
	"hospital-dashboard/internal/service"
	"hospital-dashboard/pkg/currency"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ErrStatsNotFound = errors.New("dashboard stats not found")

type DashboardUsecase interface {
	GetOverview(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	log             *logrus.Logger
	dashboardRepo   repository.DashboardRepository
	roomRepo        repository.RoomRepository
	appointmentRepo repository.AppointmentRepository
	money           *currency.Formatter
	recentLimit     int
}

func NewDashboardUsecase(
	log *logrus.Logger,
	dashboardRepo repository.DashboardRepository,
	roomRepo repository.RoomRepository,
	appointmentRepo repository.AppointmentRepository,
	money *currency.Formatter,
	recentLimit int,
) DashboardUsecase {
	return &dashboardUsecase{
		log:             log,
		dashboardRepo:   dashboardRepo,
		roomRepo:        roomRepo,
		appointmentRepo: appointmentRepo,
		money:           money,
		recentLimit:     recentLimit,
	}
}

func (u *dashboardUsecase) GetOverview(ctx context.Context) (*dto.DashboardResponse, error) {
	stats, err := u.dashboardRepo.GetStats(ctx)
	if err != nil {
		u.log.Warnf("Failed to get dashboard stats: %+v", err)
		return nil, err
	}
	if stats == nil {
		return nil, ErrStatsNotFound
	}

	rooms, err := u.roomRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find rooms: %+v", err)
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	p := message.NewPrinter(language.English)
	statCards := []dto.StatCardResponse{
		{
			Title:    "Total Patients",
			TitleBn:  "মোট রোগী",
			Value:    p.Sprintf("%d", stats.TotalPatients),
			Subtitle: fmt.Sprintf("%d admitted today", stats.TodayAdmissions),
		},
		{
			Title:    "Bed Occupancy",
			TitleBn:  "শয্যা দখল",
			Value:    fmt.Sprintf("%d%%", stats.OccupancyRate),
			Subtitle: fmt.Sprintf("%d/%d beds occupied", stats.OccupiedRooms, stats.TotalRooms),
		},
		{
			Title:    "Today's Revenue",
			TitleBn:  "আজকের আয়",
			Value:    u.money.Compact(stats.TodayRevenue),
			Subtitle: "Monthly: " + u.money.Compact(stats.MonthlyRevenue),
		},
		{
			Title:    "Active Doctors",
			TitleBn:  "সক্রিয় ডাক্তার",
			Value:    fmt.Sprintf("%d", stats.AvailableDoctors),
			Subtitle: fmt.Sprintf("%d total doctors", stats.TotalDoctors),
		},
	}

	quickStats := []dto.QuickStatResponse{
		{Label: "Appointments", Value: stats.TodayAppointments},
		{Label: "Completed", Value: stats.CompletedAppointments},
		{Label: "Emergency", Value: stats.EmergencyCases},
		{Label: "Pending Bills", Value: stats.PendingBills},
	}

	recent := appointments
	if u.recentLimit >= 0 && len(recent) > u.recentLimit {
		recent = recent[:u.recentLimit]
	}

	paid, unpaid := service.CountPaid(appointments)

	return &dto.DashboardResponse{
		StatCards:          statCards,
		QuickStats:         quickStats,
		RecentAppointments: converter.AppointmentsToResponses(recent, u.money),
		CriticalRooms:      converter.RoomsToResponses(service.CriticalRooms(rooms), u.money),
		Payments: dto.PaymentSplitResponse{
			Paid:   paid,
			Unpaid: unpaid,
		},
	}, nil
}
