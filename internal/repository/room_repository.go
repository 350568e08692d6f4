package repository

import (
	"context"

	"go-gin-event-room/internal/model"
	apperrors "go-gin-event-room/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RoomRepository interface {
	Create(ctx context.Context, room *model.Room) (*model.Room, error)
	List(ctx context.Context) ([]*model.Room, error)
	FindByRoomID(ctx context.Context, roomID uuid.UUID) (*model.Room, error)

	// Transaction methods
	FindByRoomIDWithLock(ctx context.Context, tx pgx.Tx, roomID uuid.UUID) (*model.Room, error)
}

type RoomRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewRoomRepository(pool *pgxpool.Pool) RoomRepository {
	return &RoomRepositoryImpl{
		pool: pool,
	}
}

const roomColumns = `id, room_id, name, capacity, location, created_at, updated_at`

func scanRoom(row pgx.Row) (*model.Room, error) {
	var room model.Room
	err := row.Scan(
		&room.ID,
		&room.RoomID,
		&room.Name,
		&room.Capacity,
		&room.Location,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepositoryImpl) Create(ctx context.Context, room *model.Room) (*model.Room, error) {
	query := `
		INSERT INTO rooms (room_id, name, capacity, location)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + roomColumns
	return scanRoom(r.pool.QueryRow(ctx, query, room.RoomID, room.Name, room.Capacity, room.Location))
}

func (r *RoomRepositoryImpl) List(ctx context.Context) ([]*model.Room, error) {
	query := `
		SELECT ` + roomColumns + `
		FROM rooms
		ORDER BY created_at DESC, id DESC
	`
	return findMany(ctx, r.pool, scanRoom, query)
}

func (r *RoomRepositoryImpl) FindByRoomID(ctx context.Context, roomID uuid.UUID) (*model.Room, error) {
	query := `
		SELECT ` + roomColumns + `
		FROM rooms
		WHERE room_id = $1
	`
	return findOne(ctx, r.pool, scanRoom, apperrors.NotFound("Room", roomID.String()), query, roomID)
}

func (r *RoomRepositoryImpl) FindByRoomIDWithLock(ctx context.Context, tx pgx.Tx, roomID uuid.UUID) (*model.Room, error) {
	query := `
		SELECT ` + roomColumns + `
		FROM rooms
		WHERE room_id = $1
		FOR SHARE
	`
	return findOne(ctx, tx, scanRoom, apperrors.NotFound("Room", roomID.String()), query, roomID)
}
