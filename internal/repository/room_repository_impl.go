package repository

import (
	"context"

	"hospital-dashboard/internal/domain/entity"
	domainRepo "hospital-dashboard/internal/domain/repository"
)

type roomRepository struct {
	rooms []entity.Room
}

// NewRoomRepository snapshots rooms; later changes to the argument are not seen.
func NewRoomRepository(rooms []entity.Room) domainRepo.RoomRepository {
	return &roomRepository{rooms: cloneRooms(rooms)}
}

func (r *roomRepository) FindAll(ctx context.Context) ([]entity.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return cloneRooms(r.rooms), nil
}

func (r *roomRepository) FindByID(ctx context.Context, id string) (*entity.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, room := range r.rooms {
		if room.ID == id {
			found := room.Clone()
			return &found, nil
		}
	}
	return nil, nil
}

func cloneRooms(rooms []entity.Room) []entity.Room {
	out := make([]entity.Room, len(rooms))
	for i, room := range rooms {
		out[i] = room.Clone()
	}
	return out
}
