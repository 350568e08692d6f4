package service

import (
	"context"
	"errors"
	"time"

	"go-gin-event-room/internal/cache"
	"go-gin-event-room/internal/database"
	"go-gin-event-room/internal/model"
	"go-gin-event-room/internal/queue"
	"go-gin-event-room/internal/repository"
	apperrors "go-gin-event-room/pkg/app_errors"
	"go-gin-event-room/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	publishTimeout = 3 * time.Second

	lockAttempts   = 5
	lockRetryDelay = 50 * time.Millisecond
)

type EventRoomService interface {
	// 建立關聯：驗證 Event、Room 存在且關聯不重複後寫入
	Create(ctx context.Context, req model.CreateEventRoomRequest) (*model.EventRoom, error)
	Get(ctx context.Context, eventID, roomID uuid.UUID) (*model.EventRoom, error)
	ListFiltered(ctx context.Context, filter model.EventRoomFilter) (*model.PagedResult[*model.EventRoom], error)
	Delete(ctx context.Context, eventID, roomID uuid.UUID) error
	// History 關聯的稽核紀錄，依發生時間排序
	History(ctx context.Context, eventID, roomID uuid.UUID) ([]*model.EventRoomAudit, error)
}

type EventRoomServiceImpl struct {
	db            database.TxBeginner
	eventRepo     repository.EventRepository
	roomRepo      repository.RoomRepository
	eventRoomRepo repository.EventRoomRepository
	auditRepo     repository.AuditRepository
	locker        cache.KeyLocker
	changeQueue   queue.ChangeQueue
	now           func() time.Time

	lockAttempts   int
	lockRetryDelay time.Duration
}

func NewEventRoomService(
	db database.TxBeginner,
	eventRepo repository.EventRepository,
	roomRepo repository.RoomRepository,
	eventRoomRepo repository.EventRoomRepository,
	auditRepo repository.AuditRepository,
	locker cache.KeyLocker,
	changeQueue queue.ChangeQueue,
) EventRoomService {
	return &EventRoomServiceImpl{
		db:            db,
		eventRepo:     eventRepo,
		roomRepo:      roomRepo,
		eventRoomRepo: eventRoomRepo,
		auditRepo:     auditRepo,
		locker:        locker,
		changeQueue:   changeQueue,
		now:           time.Now,

		lockAttempts:   lockAttempts,
		lockRetryDelay: lockRetryDelay,
	}
}

func (s *EventRoomServiceImpl) Create(ctx context.Context, req model.CreateEventRoomRequest) (*model.EventRoom, error) {
	record := &model.EventRoom{
		EventID:   req.EventID,
		RoomID:    req.RoomID,
		CreatedBy: req.CreatedBy,
	}
	if record.CreatedBy == "" {
		record.CreatedBy = model.DefaultCreatedBy
	}
	key := record.Key()

	// 1. 同一複合鍵同時只允許一個建立流程
	release, err := s.acquire(ctx, key)
	if err != nil {
		return nil, err
	}
	defer release()

	// 2. 驗證與寫入在同一個 transaction
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if _, err := s.eventRepo.FindByEventIDWithLock(ctx, tx, req.EventID); err != nil {
		return nil, err
	}
	if _, err := s.roomRepo.FindByRoomIDWithLock(ctx, tx, req.RoomID); err != nil {
		return nil, err
	}

	_, err = s.eventRoomRepo.FindByKeysWithLock(ctx, tx, req.EventID, req.RoomID)
	switch {
	case err == nil:
		return nil, apperrors.Conflict(apperrors.ErrDuplicateEventRoom.Reason, key.String())
	case !errors.Is(err, apperrors.ErrEventRoomNotFound):
		return nil, err
	}

	if err := s.eventRoomRepo.Add(ctx, tx, record); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	// 3. 重新讀取以帶出 Event / Room
	created, err := s.eventRoomRepo.FindByKeys(ctx, req.EventID, req.RoomID)
	if err != nil {
		logger.WithComponent("service").Warn("reload created event room failed",
			zap.String("key", key.String()), zap.Error(err))
		created = record
	}

	s.publish(ctx, model.ChangeTypeCreated, key, record.CreatedBy)
	return created, nil
}

// acquire 鎖被佔用時短暫重試，讓等待者看到持有者的實際結果；仍取不到才回 Conflict
func (s *EventRoomServiceImpl) acquire(ctx context.Context, key model.EventRoomKey) (cache.ReleaseFunc, error) {
	for attempt := 1; ; attempt++ {
		release, ok, err := s.locker.Acquire(ctx, key)
		if err != nil {
			return nil, err
		}
		if ok {
			return release, nil
		}
		if attempt >= s.lockAttempts {
			return nil, apperrors.Conflict(apperrors.ErrEventRoomLocked.Reason, key.String())
		}
		select {
		case <-time.After(s.lockRetryDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func (s *EventRoomServiceImpl) Get(ctx context.Context, eventID, roomID uuid.UUID) (*model.EventRoom, error) {
	return s.eventRoomRepo.FindByKeys(ctx, eventID, roomID)
}

func (s *EventRoomServiceImpl) ListFiltered(ctx context.Context, filter model.EventRoomFilter) (*model.PagedResult[*model.EventRoom], error) {
	filter = filter.Normalize()

	var (
		total int
		items []*model.EventRoom
	)
	// 兩個查詢各自使用連線，並行寫入時 totalCount 可能與 items 短暫不一致
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.eventRoomRepo.Count(gctx, filter)
		total = n
		return err
	})
	g.Go(func() error {
		page, err := s.eventRoomRepo.FindPage(gctx, filter, true)
		items = page
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return model.NewPagedResult(items, total, filter.PageNumber, filter.PageSize), nil
}

func (s *EventRoomServiceImpl) Delete(ctx context.Context, eventID, roomID uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	record, err := s.eventRoomRepo.FindByKeysWithLock(ctx, tx, eventID, roomID)
	if err != nil {
		return err
	}

	if err := s.eventRoomRepo.DeleteByKeys(ctx, tx, eventID, roomID); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	s.publish(ctx, model.ChangeTypeDeleted, record.Key(), actorFromContext(ctx))
	return nil
}

func (s *EventRoomServiceImpl) History(ctx context.Context, eventID, roomID uuid.UUID) ([]*model.EventRoomAudit, error) {
	return s.auditRepo.ListByKeys(ctx, eventID, roomID)
}

// publish 已 commit 的異動送進 change queue；失敗只記錄，不影響呼叫結果
func (s *EventRoomServiceImpl) publish(ctx context.Context, changeType model.ChangeType, key model.EventRoomKey, actor string) {
	change := &model.AssociationChange{
		Type:       changeType,
		EventID:    key.EventID,
		RoomID:     key.RoomID,
		Actor:      actor,
		OccurredAt: s.now().UTC(),
	}
	// 請求的 ctx 可能已取消，異動仍要送出
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := s.changeQueue.PublishChange(ctx, change); err != nil {
		logger.WithComponent("service").Error("publish association change failed",
			zap.String("type", string(changeType)),
			zap.String("key", key.String()),
			zap.Error(err))
	}
}
