package repository

import (
	"context"
	"fmt"

	"go-gin-event-room/internal/model"
	apperrors "go-gin-event-room/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AuditRepository interface {
	Insert(ctx context.Context, change *model.AssociationChange) (*model.EventRoomAudit, error)
	ListByKeys(ctx context.Context, eventID, roomID uuid.UUID) ([]*model.EventRoomAudit, error)
}

type AuditRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewAuditRepository(pool *pgxpool.Pool) AuditRepository {
	return &AuditRepositoryImpl{
		pool: pool,
	}
}

const auditColumns = `id, event_id, room_id, change_type, actor, occurred_at, recorded_at`

func scanAudit(row pgx.Row) (*model.EventRoomAudit, error) {
	var a model.EventRoomAudit
	err := row.Scan(
		&a.ID,
		&a.EventID,
		&a.RoomID,
		&a.ChangeType,
		&a.Actor,
		&a.OccurredAt,
		&a.RecordedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AuditRepositoryImpl) Insert(ctx context.Context, change *model.AssociationChange) (*model.EventRoomAudit, error) {
	if !change.Type.IsValid() {
		return nil, apperrors.ErrInvalidInput
	}

	query := `
		INSERT INTO event_room_audits (event_id, room_id, change_type, actor, occurred_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + auditColumns

	audit, err := scanAudit(r.pool.QueryRow(ctx, query,
		change.EventID, change.RoomID, change.Type, change.Actor, change.OccurredAt,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to insert audit: %w", err)
	}
	return audit, nil
}

func (r *AuditRepositoryImpl) ListByKeys(ctx context.Context, eventID, roomID uuid.UUID) ([]*model.EventRoomAudit, error) {
	query := `
		SELECT ` + auditColumns + `
		FROM event_room_audits
		WHERE event_id = $1 AND room_id = $2
		ORDER BY occurred_at ASC, id ASC
	`
	return findMany(ctx, r.pool, scanAudit, query, eventID, roomID)
}
