package handler

import (
	"context"
	"io"

	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/usecase"
	"hospital-dashboard/pkg/response"
	"hospital-dashboard/pkg/validator"
)

type RoomHandler struct {
	roomUsecase usecase.RoomUsecase
	validator   *validator.CustomValidator
}

func NewRoomHandler(roomUsecase usecase.RoomUsecase, validator *validator.CustomValidator) *RoomHandler {
	return &RoomHandler{
		roomUsecase: roomUsecase,
		validator:   validator,
	}
}

func (h *RoomHandler) ListRooms(ctx context.Context, w io.Writer, args []string) {
	var req dto.RoomListRequest
	fs := newFlagSet("rooms")
	fs.StringVarP(&req.Search, "search", "q", "", "room number or patient name")
	fs.StringVar(&req.Type, "type", "all", "room type")
	fs.StringVar(&req.Status, "status", "all", "room status")
	fs.StringVar(&req.SortBy, "sort", "number", "number, price or occupancy")
	if err := fs.Parse(args); err != nil {
		response.Error(w, "Invalid arguments", err.Error())
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	rooms, err := h.roomUsecase.ListRooms(ctx, &req)
	if err != nil {
		response.InternalError(w, "Failed to get rooms")
		return
	}

	response.SuccessWithMeta(w, "Rooms retrieved successfully", rooms, &response.Meta{
		Total:    rooms.StoreTotal,
		Filtered: rooms.Total,
		SortBy:   rooms.SortBy,
	})
}

func (h *RoomHandler) GetRoom(ctx context.Context, w io.Writer, args []string) {
	var roomID string
	fs := newFlagSet("room")
	fs.StringVar(&roomID, "id", "", "room id")
	if err := fs.Parse(args); err != nil {
		response.Error(w, "Invalid arguments", err.Error())
		return
	}
	if roomID == "" && fs.NArg() > 0 {
		roomID = fs.Arg(0)
	}
	if roomID == "" {
		response.Error(w, "Room ID is required", nil)
		return
	}

	room, err := h.roomUsecase.GetRoom(ctx, roomID)
	if err != nil {
		if err == usecase.ErrRoomNotFound {
			response.NotFound(w, "Room not found")
			return
		}
		response.InternalError(w, "Failed to get room")
		return
	}

	response.Success(w, "Room retrieved successfully", room)
}

func (h *RoomHandler) GetSummary(ctx context.Context, w io.Writer, args []string) {
	summary, err := h.roomUsecase.GetSummary(ctx)
	if err != nil {
		response.InternalError(w, "Failed to get room summary")
		return
	}

	response.Success(w, "Room summary retrieved successfully", summary)
}

func (h *RoomHandler) CalculateRent(ctx context.Context, w io.Writer, args []string) {
	var req dto.RentQuoteRequest
	fs := newFlagSet("rent")
	fs.StringVar(&req.RoomID, "room", "", "room id")
	fs.StringVar(&req.Unit, "unit", "day", "hour, day or week")
	fs.IntVar(&req.Duration, "duration", 1, "number of units")
	if err := fs.Parse(args); err != nil {
		response.Error(w, "Invalid arguments", err.Error())
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	quote, err := h.roomUsecase.CalculateRent(ctx, &req)
	if err != nil {
		switch err {
		case usecase.ErrRoomNotFound:
			response.NotFound(w, "Room not found")
		case usecase.ErrUnknownRentUnit:
			response.Error(w, "Unknown rent unit, use hour, day or week", nil)
		case usecase.ErrInvalidRentDuration:
			response.Error(w, "Duration is out of range for the unit", nil)
		default:
			response.InternalError(w, "Failed to calculate rent")
		}
		return
	}

	response.Success(w, "Rent calculated successfully", quote)
}

func (h *RoomHandler) DraftRoom(ctx context.Context, w io.Writer, args []string) {
	var req dto.CreateRoomRequest
	fs := newFlagSet("add-room")
	fs.StringVar(&req.Number, "number", "", "room number")
	fs.IntVar(&req.Floor, "floor", 0, "floor, 0 is ground")
	fs.StringVar(&req.Type, "type", "general", "room type")
	fs.IntVar(&req.Capacity, "capacity", 1, "number of beds")
	fs.Float64Var(&req.PricePerHour, "hourly", 0, "price per hour")
	fs.Float64Var(&req.PricePerDay, "daily", 0, "price per day")
	fs.Float64Var(&req.PricePerWeek, "weekly", 0, "price per week")
	fs.StringVar(&req.ACType, "ac", "AC", "AC or Non-AC")
	fs.StringSliceVar(&req.Features, "feature", nil, "room feature, repeatable")
	if err := fs.Parse(args); err != nil {
		response.Error(w, "Invalid arguments", err.Error())
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	draft, err := h.roomUsecase.DraftRoom(ctx, &req)
	if err != nil {
		response.InternalError(w, "Failed to draft room")
		return
	}

	response.Success(w, "Room draft created successfully", draft)
}
