package usecase

import (
	"context"
	"errors"
	"slices"

	"hospital-dashboard/internal/converter"
	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/domain/entity"
	"hospital-dashboard/internal/domain/repository"
	"hospital-dashboard/internal/service"
	"hospital-dashboard/pkg/currency"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrUnknownRentUnit     = service.ErrUnknownRentUnit
	ErrInvalidRentDuration = service.ErrInvalidRentDuration
)

const roomSummaryKey = "rooms:summary"

type RoomUsecase interface {
	ListRooms(ctx context.Context, req *dto.RoomListRequest) (*dto.RoomListResponse, error)
	GetRoom(ctx context.Context, roomID string) (*dto.RoomResponse, error)
	GetSummary(ctx context.Context) (*dto.RoomSummaryResponse, error)
	CalculateRent(ctx context.Context, req *dto.RentQuoteRequest) (*dto.RentQuoteResponse, error)
	DraftRoom(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomDraftResponse, error)
}

type roomUsecase struct {
	log           *logrus.Logger
	roomRepo      repository.RoomRepository
	cache         *gocache.Cache
	money         *currency.Formatter
	floors        []int
	serviceCharge decimal.Decimal
}

func NewRoomUsecase(
	log *logrus.Logger,
	roomRepo repository.RoomRepository,
	cache *gocache.Cache,
	money *currency.Formatter,
	floors []int,
	serviceCharge decimal.Decimal,
) RoomUsecase {
	return &roomUsecase{
		log:           log,
		roomRepo:      roomRepo,
		cache:         cache,
		money:         money,
		floors:        slices.Clone(floors),
		serviceCharge: serviceCharge,
	}
}

func (u *roomUsecase) ListRooms(ctx context.Context, req *dto.RoomListRequest) (*dto.RoomListResponse, error) {
	rooms, err := u.roomRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find rooms: %+v", err)
		return nil, err
	}

	sortKey := entity.RoomSortKey(req.SortBy)
	if sortKey == "" {
		sortKey = entity.RoomSortByNumber
	}

	filter := entity.RoomFilter{
		Query:  req.Search,
		Type:   req.Type,
		Status: req.Status,
	}
	visible := service.QueryRooms(rooms, filter, sortKey)

	return &dto.RoomListResponse{
		Rooms:      converter.RoomsToResponses(visible, u.money),
		Total:      len(visible),
		StoreTotal: len(rooms),
		SortBy:     string(sortKey),
		NextSortBy: string(service.NextRoomSortKey(sortKey)),
	}, nil
}

func (u *roomUsecase) GetRoom(ctx context.Context, roomID string) (*dto.RoomResponse, error) {
	room, err := u.roomRepo.FindByID(ctx, roomID)
	if err != nil {
		u.log.Warnf("Failed to find room: %+v", err)
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	return converter.RoomToResponse(room, u.money), nil
}

// GetSummary is memoised: the room store does not change after start-up.
func (u *roomUsecase) GetSummary(ctx context.Context) (*dto.RoomSummaryResponse, error) {
	if cached, found := u.cache.Get(roomSummaryKey); found {
		u.log.Debugf("Room summary served from cache")
		return copyRoomSummary(cached.(*dto.RoomSummaryResponse)), nil
	}

	rooms, err := u.roomRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find rooms: %+v", err)
		return nil, err
	}

	summary := converter.RoomSummaryToResponse(
		service.SummarizeRooms(rooms),
		service.FloorOccupancies(rooms, u.floors),
		service.CountByType(rooms),
	)
	if summary.Unrecognized > 0 {
		u.log.Warnf("Room summary: %d rooms have an unrecognized status", summary.Unrecognized)
	}

	u.cache.SetDefault(roomSummaryKey, summary)
	return copyRoomSummary(summary), nil
}

func (u *roomUsecase) CalculateRent(ctx context.Context, req *dto.RentQuoteRequest) (*dto.RentQuoteResponse, error) {
	room, err := u.roomRepo.FindByID(ctx, req.RoomID)
	if err != nil {
		u.log.Warnf("Failed to find room: %+v", err)
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	quote, err := service.CalculateRent(room, entity.RentUnit(req.Unit), req.Duration, u.serviceCharge)
	if err != nil {
		u.log.Warnf("Failed to calculate rent for room %s: %+v", room.ID, err)
		return nil, err
	}

	return converter.RentQuoteToResponse(room, quote, u.money), nil
}

// DraftRoom builds the room the add-room form would create. Nothing is stored.
func (u *roomUsecase) DraftRoom(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomDraftResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	draftID := uuid.New()
	room := &entity.Room{
		ID:           draftID.String(),
		Number:       req.Number,
		Floor:        req.Floor,
		Type:         entity.RoomType(req.Type),
		Status:       entity.RoomStatusAvailable,
		Capacity:     req.Capacity,
		Occupied:     0,
		PricePerHour: req.PricePerHour,
		PricePerDay:  req.PricePerDay,
		PricePerWeek: req.PricePerWeek,
		Features:     slices.Clone(req.Features),
		ACType:       entity.ACType(req.ACType),
	}

	u.log.Infof("Drafted room %s on floor %d", room.Number, room.Floor)

	return &dto.RoomDraftResponse{
		DraftID: draftID,
		Room:    *converter.RoomToResponse(room, u.money),
	}, nil
}

func copyRoomSummary(src *dto.RoomSummaryResponse) *dto.RoomSummaryResponse {
	out := *src
	out.Floors = slices.Clone(src.Floors)
	out.TypeCounts = slices.Clone(src.TypeCounts)
	return &out
}
