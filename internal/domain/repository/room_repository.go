package repository

import (
	"context"

	"hospital-dashboard/internal/domain/entity"
)

// RoomRepository is the read-only room store. Implementations never hand out
// references into their own state.
type RoomRepository interface {
	FindAll(ctx context.Context) ([]entity.Room, error)
	FindByID(ctx context.Context, id string) (*entity.Room, error)
}
