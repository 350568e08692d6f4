package repository

import (
	"context"
	"fmt"
	"time"

	"go-gin-event-room/internal/model"
	apperrors "go-gin-event-room/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRoomRepository interface {
	// FindByKeys 以複合鍵查詢，並載入 Event / Room
	FindByKeys(ctx context.Context, eventID, roomID uuid.UUID) (*model.EventRoom, error)
	Count(ctx context.Context, filter model.EventRoomFilter) (int, error)
	// FindPage 依 id 升冪分頁，includeRelated 時一併載入 Event / Room
	FindPage(ctx context.Context, filter model.EventRoomFilter, includeRelated bool) ([]*model.EventRoom, error)

	// Transaction methods
	FindByKeysWithLock(ctx context.Context, tx pgx.Tx, eventID, roomID uuid.UUID) (*model.EventRoom, error)
	Add(ctx context.Context, tx pgx.Tx, eventRoom *model.EventRoom) error
	DeleteByKeys(ctx context.Context, tx pgx.Tx, eventID, roomID uuid.UUID) error
}

type EventRoomRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRoomRepository(pool *pgxpool.Pool) EventRoomRepository {
	return &EventRoomRepositoryImpl{
		pool: pool,
	}
}

const (
	eventRoomColumns = `er.id, er.event_id, er.room_id, er.created_by, er.created_at`

	relatedColumns = `
		e.id, e.event_id, e.name, e.description, e.created_at, e.updated_at,
		r.id, r.room_id, r.name, r.capacity, r.location, r.created_at, r.updated_at`

	relatedJoins = `
		LEFT JOIN events e ON e.event_id = er.event_id
		LEFT JOIN rooms r ON r.room_id = er.room_id`
)

func eventRoomNotFound(eventID, roomID uuid.UUID) error {
	return apperrors.NotFound("EventRoom", model.EventRoomKey{EventID: eventID, RoomID: roomID}.String())
}

func scanEventRoom(row pgx.Row) (*model.EventRoom, error) {
	var er model.EventRoom
	err := row.Scan(
		&er.ID,
		&er.EventID,
		&er.RoomID,
		&er.CreatedBy,
		&er.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &er, nil
}

// scanEventRoomWithRelated LEFT JOIN 沒對到時 Event / Room 維持 nil
func scanEventRoomWithRelated(row pgx.Row) (*model.EventRoom, error) {
	var (
		er model.EventRoom

		eID          *int
		eEventID     *uuid.UUID
		eName        *string
		eDescription *string
		eCreatedAt   *time.Time
		eUpdatedAt   *time.Time

		rID        *int
		rRoomID    *uuid.UUID
		rName      *string
		rCapacity  *int
		rLocation  *string
		rCreatedAt *time.Time
		rUpdatedAt *time.Time
	)
	err := row.Scan(
		&er.ID,
		&er.EventID,
		&er.RoomID,
		&er.CreatedBy,
		&er.CreatedAt,
		&eID, &eEventID, &eName, &eDescription, &eCreatedAt, &eUpdatedAt,
		&rID, &rRoomID, &rName, &rCapacity, &rLocation, &rCreatedAt, &rUpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if eID != nil {
		er.Event = &model.Event{
			ID:          *eID,
			EventID:     *eEventID,
			Name:        *eName,
			Description: eDescription,
			CreatedAt:   *eCreatedAt,
			UpdatedAt:   *eUpdatedAt,
		}
	}
	if rID != nil {
		er.Room = &model.Room{
			ID:        *rID,
			RoomID:    *rRoomID,
			Name:      *rName,
			Capacity:  *rCapacity,
			Location:  rLocation,
			CreatedAt: *rCreatedAt,
			UpdatedAt: *rUpdatedAt,
		}
	}
	return &er, nil
}

func filterWhere(filter model.EventRoomFilter) *whereBuilder {
	w := &whereBuilder{}
	if filter.EventID != nil {
		w.add("er.event_id = $%d", *filter.EventID)
	}
	if filter.RoomID != nil {
		w.add("er.room_id = $%d", *filter.RoomID)
	}
	return w
}

func (r *EventRoomRepositoryImpl) FindByKeys(ctx context.Context, eventID, roomID uuid.UUID) (*model.EventRoom, error) {
	query := `
		SELECT ` + eventRoomColumns + `,` + relatedColumns + `
		FROM event_rooms er` + relatedJoins + `
		WHERE er.event_id = $1 AND er.room_id = $2
	`
	return findOne(ctx, r.pool, scanEventRoomWithRelated, eventRoomNotFound(eventID, roomID), query, eventID, roomID)
}

func (r *EventRoomRepositoryImpl) Count(ctx context.Context, filter model.EventRoomFilter) (int, error) {
	w := filterWhere(filter)
	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM event_rooms er
		%s
	`, w)
	return count(ctx, r.pool, query, w.args...)
}

func (r *EventRoomRepositoryImpl) FindPage(ctx context.Context, filter model.EventRoomFilter, includeRelated bool) ([]*model.EventRoom, error) {
	filter = filter.Normalize()
	w := filterWhere(filter)
	limitPos := w.next(filter.PageSize)
	offsetPos := w.next(filter.Offset())

	columns, joins, scan := eventRoomColumns, "", scanEventRoom
	if includeRelated {
		columns, joins, scan = eventRoomColumns+","+relatedColumns, relatedJoins, scanEventRoomWithRelated
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM event_rooms er%s
		%s
		ORDER BY er.id ASC
		LIMIT $%d OFFSET $%d
	`, columns, joins, w, limitPos, offsetPos)

	return findMany(ctx, r.pool, scan, query, w.args...)
}

// FindByKeysWithLock 以 FOR UPDATE 鎖定既有關聯
func (r *EventRoomRepositoryImpl) FindByKeysWithLock(ctx context.Context, tx pgx.Tx, eventID, roomID uuid.UUID) (*model.EventRoom, error) {
	query := `
		SELECT ` + eventRoomColumns + `
		FROM event_rooms er
		WHERE er.event_id = $1 AND er.room_id = $2
		FOR UPDATE
	`
	return findOne(ctx, tx, scanEventRoom, eventRoomNotFound(eventID, roomID), query, eventID, roomID)
}

// Add 寫入關聯；違反 (event_id, room_id) 唯一約束時回傳 Conflict
func (r *EventRoomRepositoryImpl) Add(ctx context.Context, tx pgx.Tx, eventRoom *model.EventRoom) error {
	query := `
		INSERT INTO event_rooms (event_id, room_id, created_by)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := tx.QueryRow(ctx, query,
		eventRoom.EventID, eventRoom.RoomID, eventRoom.CreatedBy,
	).Scan(
		&eventRoom.ID,
		&eventRoom.CreatedAt,
	)
	if err != nil {
		if apperrors.IsUniqueViolation(err) {
			return apperrors.Conflict(apperrors.ErrDuplicateEventRoom.Reason, eventRoom.Key().String())
		}
		return fmt.Errorf("failed to add event room: %w", err)
	}

	return nil
}

func (r *EventRoomRepositoryImpl) DeleteByKeys(ctx context.Context, tx pgx.Tx, eventID, roomID uuid.UUID) error {
	query := `
		DELETE FROM event_rooms
		WHERE event_id = $1 AND room_id = $2
	`

	result, err := tx.Exec(ctx, query, eventID, roomID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return eventRoomNotFound(eventID, roomID)
	}

	return nil
}
