package repository

import (
	"context"

	"go-gin-event-room/internal/model"
	apperrors "go-gin-event-room/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	List(ctx context.Context) ([]*model.Event, error)
	FindByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error)

	// Transaction methods
	FindByEventIDWithLock(ctx context.Context, tx pgx.Tx, eventID uuid.UUID) (*model.Event, error)
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

const eventColumns = `id, event_id, name, description, created_at, updated_at`

func scanEvent(row pgx.Row) (*model.Event, error) {
	var event model.Event
	err := row.Scan(
		&event.ID,
		&event.EventID,
		&event.Name,
		&event.Description,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	query := `
		INSERT INTO events (event_id, name, description)
		VALUES ($1, $2, $3)
		RETURNING ` + eventColumns
	return scanEvent(r.pool.QueryRow(ctx, query, event.EventID, event.Name, event.Description))
}

func (r *EventRepositoryImpl) List(ctx context.Context) ([]*model.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		ORDER BY created_at DESC, id DESC
	`
	return findMany(ctx, r.pool, scanEvent, query)
}

func (r *EventRepositoryImpl) FindByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE event_id = $1
	`
	return findOne(ctx, r.pool, scanEvent, apperrors.NotFound("Event", eventID.String()), query, eventID)
}

// FindByEventIDWithLock 在 transaction 內以 FOR SHARE 鎖定 event，commit 前不會被修改或刪除
func (r *EventRepositoryImpl) FindByEventIDWithLock(ctx context.Context, tx pgx.Tx, eventID uuid.UUID) (*model.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE event_id = $1
		FOR SHARE
	`
	return findOne(ctx, tx, scanEvent, apperrors.NotFound("Event", eventID.String()), query, eventID)
}
