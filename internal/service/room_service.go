package service

import (
	"context"

	"go-gin-event-room/internal/model"
	"go-gin-event-room/internal/repository"
	apperrors "go-gin-event-room/pkg/app_errors"

	"github.com/google/uuid"
)

type RoomService interface {
	List(ctx context.Context) ([]*model.Room, error)
	GetByRoomID(ctx context.Context, roomID uuid.UUID) (*model.Room, error)
	Create(ctx context.Context, room *model.Room) (*model.Room, error)
}

type RoomServiceImpl struct {
	repo repository.RoomRepository
}

func NewRoomService(repo repository.RoomRepository) RoomService {
	return &RoomServiceImpl{repo: repo}
}

func (s *RoomServiceImpl) List(ctx context.Context) ([]*model.Room, error) {
	return s.repo.List(ctx)
}

func (s *RoomServiceImpl) GetByRoomID(ctx context.Context, roomID uuid.UUID) (*model.Room, error) {
	return s.repo.FindByRoomID(ctx, roomID)
}

func (s *RoomServiceImpl) Create(ctx context.Context, room *model.Room) (*model.Room, error) {
	if room.Capacity < 0 {
		return nil, apperrors.ErrInvalidInput
	}
	if room.RoomID == uuid.Nil {
		room.RoomID = uuid.New()
	}
	return s.repo.Create(ctx, room)
}
