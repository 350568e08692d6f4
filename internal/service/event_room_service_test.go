package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	cacheMocks "go-gin-event-room/internal/cache/mocks"
	"go-gin-event-room/internal/model"
	queueMocks "go-gin-event-room/internal/queue/mocks"
	repoMocks "go-gin-event-room/internal/repository/mocks"
	"go-gin-event-room/internal/service"
	apperrors "go-gin-event-room/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type eventRoomServiceMocks struct {
	db            *fakeDB
	eventRepo     *repoMocks.MockEventRepository
	roomRepo      *repoMocks.MockRoomRepository
	eventRoomRepo *repoMocks.MockEventRoomRepository
	auditRepo     *repoMocks.MockAuditRepository
	locker        *cacheMocks.MockKeyLocker
	changeQueue   *queueMocks.MockChangeQueue
	released      int
}

func setupEventRoomService(t *testing.T) (service.EventRoomService, *eventRoomServiceMocks) {
	m := &eventRoomServiceMocks{
		db:            newFakeDB(),
		eventRepo:     repoMocks.NewMockEventRepository(t),
		roomRepo:      repoMocks.NewMockRoomRepository(t),
		eventRoomRepo: repoMocks.NewMockEventRoomRepository(t),
		auditRepo:     repoMocks.NewMockAuditRepository(t),
		locker:        cacheMocks.NewMockKeyLocker(t),
		changeQueue:   queueMocks.NewMockChangeQueue(t),
	}
	svc := service.NewEventRoomService(m.db, m.eventRepo, m.roomRepo, m.eventRoomRepo, m.auditRepo, m.locker, m.changeQueue)
	return svc, m
}

func (m *eventRoomServiceMocks) expectLock(key model.EventRoomKey) {
	m.locker.EXPECT().Acquire(mock.Anything, key).Return(func() { m.released++ }, true, nil).Once()
}

func changeOf(changeType model.ChangeType, key model.EventRoomKey, actor string) interface{} {
	return mock.MatchedBy(func(c *model.AssociationChange) bool {
		return c.Type == changeType && c.EventID == key.EventID && c.RoomID == key.RoomID && c.Actor == actor && !c.OccurredAt.IsZero()
	})
}

var (
	testEventID = uuid.MustParse("a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11")
	testRoomID  = uuid.MustParse("b1ffcd00-ad1c-4ef8-bb6d-6bb9bd380a22")
	testKey     = model.EventRoomKey{EventID: testEventID, RoomID: testRoomID}
	testEvent   = &model.Event{ID: 1, EventID: testEventID, Name: "Conference"}
	testRoom    = &model.Room{ID: 2, RoomID: testRoomID, Name: "Hall A", Capacity: 100}
)

func TestEventRoomService_Create(t *testing.T) {
	ctx := context.Background()
	req := model.CreateEventRoomRequest{EventID: testEventID, RoomID: testRoomID, CreatedBy: "alice"}

	t.Run("Success", func(t *testing.T) {
		svc, m := setupEventRoomService(t)
		tx := m.db.tx
		createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

		m.expectLock(testKey)
		m.eventRepo.EXPECT().FindByEventIDWithLock(ctx, tx, testEventID).Return(testEvent, nil).Once()
		m.roomRepo.EXPECT().FindByRoomIDWithLock(ctx, tx, testRoomID).Return(testRoom, nil).Once()
		m.eventRoomRepo.EXPECT().FindByKeysWithLock(ctx, tx, testEventID, testRoomID).Return(nil, apperrors.NotFound("EventRoom", testKey.String())).Once()
		m.eventRoomRepo.EXPECT().Add(ctx, tx, mock.Anything).Run(func(ctx context.Context, _ pgx.Tx, er *model.EventRoom) {
			er.ID = 7
			er.CreatedAt = createdAt
		}).Return(nil).Once()
		m.eventRoomRepo.EXPECT().FindByKeys(ctx, testEventID, testRoomID).Return(&model.EventRoom{
			ID: 7, EventID: testEventID, RoomID: testRoomID, CreatedBy: "alice", CreatedAt: createdAt,
			Event: testEvent, Room: testRoom,
		}, nil).Once()
		m.changeQueue.EXPECT().PublishChange(mock.Anything, changeOf(model.ChangeTypeCreated, testKey, "alice")).Return(nil).Once()

		created, err := svc.Create(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, 7, created.ID)
		assert.Equal(t, "alice", created.CreatedBy)
		assert.Equal(t, testEvent, created.Event)
		assert.Equal(t, testRoom, created.Room)
		assert.True(t, tx.committed)
		assert.Equal(t, 1, m.released)
	})

	t.Run("Success - default creator", func(t *testing.T) {
		svc, m := setupEventRoomService(t)
		tx := m.db.tx

		m.expectLock(testKey)
		m.eventRepo.EXPECT().FindByEventIDWithLock(ctx, tx, testEventID).Return(testEvent, nil).Once()
		m.roomRepo.EXPECT().FindByRoomIDWithLock(ctx, tx, testRoomID).Return(testRoom, nil).Once()
		m.eventRoomRepo.EXPECT().FindByKeysWithLock(ctx, tx, testEventID, testRoomID).Return(nil, apperrors.ErrEventRoomNotFound).Once()
		m.eventRoomRepo.EXPECT().Add(ctx, tx, mock.MatchedBy(func(er *model.EventRoom) bool {
			return er.CreatedBy == model.DefaultCreatedBy
		})).Return(nil).Once()
		m.eventRoomRepo.EXPECT().FindByKeys(ctx, testEventID, testRoomID).Return(&model.EventRoom{EventID: testEventID, RoomID: testRoomID, CreatedBy: model.DefaultCreatedBy}, nil).Once()
		m.changeQueue.EXPECT().PublishChange(mock.Anything, changeOf(model.ChangeTypeCreated, testKey, model.DefaultCreatedBy)).Return(nil).Once()

		created, err := svc.Create(ctx, model.CreateEventRoomRequest{EventID: testEventID, RoomID: testRoomID})

		require.NoError(t, err)
		assert.Equal(t, model.DefaultCreatedBy, created.CreatedBy)
	})

	t.Run("Success - publish failure does not fail the call", func(t *testing.T) {
		svc, m := setupEventRoomService(t)
		tx := m.db.tx

		m.expectLock(testKey)
		m.eventRepo.EXPECT().FindByEventIDWithLock(ctx, tx, testEventID).Return(testEvent, nil).Once()
		m.roomRepo.EXPECT().FindByRoomIDWithLock(ctx, tx, testRoomID).Return(testRoom, nil).Once()
		m.eventRoomRepo.EXPECT().FindByKeysWithLock(ctx, tx, testEventID, testRoomID).Return(nil, apperrors.ErrEventRoomNotFound).Once()
		m.eventRoomRepo.EXPECT().Add(ctx, tx, mock.Anything).Return(nil).Once()
		m.eventRoomRepo.EXPECT().FindByKeys(ctx, testEventID, testRoomID).Return(&model.EventRoom{EventID: testEventID, RoomID: testRoomID}, nil).Once()
		m.changeQueue.EXPECT().PublishChange(mock.Anything, mock.Anything).Return(errors.New("queue down")).Once()

		created, err := svc.Create(ctx, req)

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.True(t, tx.committed)
	})

	t.Run("Success - reload failure returns inserted record", func(t *testing.T) {
		svc, m := setupEventRoomService(t)
		tx := m.db.tx

		m.expectLock(testKey)
		m.eventRepo.EXPECT().FindByEventIDWithLock(ctx, tx, testEventID).Return(testEvent, nil).Once()
		m.roomRepo.EXPECT().FindByRoomIDWithLock(ctx, tx, testRoomID).Return(testRoom, nil).Once()
		m.eventRoomRepo.EXPECT().FindByKeysWithLock(ctx, tx, testEventID, testRoomID).Return(nil, apperrors.ErrEventRoomNotFound).Once()
		m.eventRoomRepo.EXPECT().Add(ctx, tx, mock.Anything).Return(nil).Once()
		m.eventRoomRepo.EXPECT().FindByKeys(ctx, testEventID, testRoomID).Return(nil, errDB).Once()
		m.changeQueue.EXPECT().PublishChange(mock.Anything, mock.Anything).Return(nil).Once()

		created, err := svc.Create(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, testEventID, created.EventID)
		assert.Equal(t, testRoomID, created.RoomID)
		assert.Nil(t, created.Event)
	})

	t.Run("Failed - nil event id is not found", func(t *testing.T) {
		svc, m := setupEventRoomService(t)
		tx := m.db.tx
		key := model.EventRoomKey{EventID: uuid.Nil, RoomID: testRoomID}

		m.expectLock(key)
		m.eventRepo.EXPECT().FindByEventIDWithLock(ctx, tx, uuid.Nil).Return(nil, apperrors.NotFound("Event", uuid.Nil.String())).Once()

		_, err := svc.Create(ctx, model.CreateEventRoomRequest{EventID: uuid.Nil, RoomID: testRoomID})

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
		assert.NotErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.False(t, tx.committed)
	})

	t.Run("Failed - creation in progress", func(t *testing.T) {
		svc, m := setupEventRoomService(t)

		m.locker.EXPECT().Acquire(mock.Anything, testKey).Return(nil, false, nil)

		_, err := svc.Create(ctx, req)

		assert.ErrorIs(t, err, apperrors.ErrConflict)
		assert.ErrorIs(t, err, apperrors.ErrEventRoomLocked)
		assert.Equal(t, 0, m.db.begins)
		m.locker.AssertNumberOfCalls(t, "Acquire", 5)
	})

	t.Run("Failed - waits for lock holder and reports the real outcome", func(t *testing.T) {
		svc, m := setupEventRoomService(t)
		tx := m.db.tx

		m.locker.EXPECT().Acquire(mock.Anything, testKey).Return(nil, false, nil).Once()
		m.expectLock(testKey)
		m.eventRepo.EXPECT().FindByEventIDWithLock(ctx, tx, testEventID).Return(nil, apperrors.NotFound("Event", testEventID.String())).Once()

		_, err := svc.Create(ctx, req)

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
		assert.NotErrorIs(t, err, apperrors.ErrEventRoomLocked)
		assert.Equal(t, 1, m.released)
	})

	t.Run("Failed - context cancelled while waiting for lock", func(t *testing.T) {
		svc, m := setupEventRoomService(t)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		m.locker.EXPECT().Acquire(mock.Anything, testKey).Return(nil, false, nil).Once()

		_, err := svc.Create(cctx, req)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, m.db.begins)
	})

	t.Run("Failed - lock error", func(t *testing.T) {
		svc, m := setupEventRoomService(t)

		m.locker.EXPECT().Acquire(mock.Anything, testKey).Return(nil, false, errors.New("redis down")).Once()

		_, err := svc.Create(ctx, req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "redis down")
		assert.Equal(t, 0, m.db.begins)
	})

	t.Run("Failed - begin transaction", func(t *testing.T) {
		svc, m := setupEventRoomService(t)
		m.db.err = errDB

		m.expectLock(testKey)

		_, err := svc.Create(ctx, req)

		assert.ErrorIs(t, err, errDB)
		assert.Equal(t, 1, m.released)
	})

	t.Run("Failed - event not found", func(t *testing.T) {
		svc, m := setupEventRoomService(t)
		tx := m.db.tx

		m.expectLock(testKey)
		m.eventRepo.EXPECT().FindByEventIDWithLock(ctx, tx, testEventID).Return(nil, apperrors.NotFound("Event", testEventID.String())).Once()

		_, err := svc.Create(ctx, req)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
		assert.False(t, tx.committed)
		assert.True(t, tx.rolledBack)
		assert.Equal(t, 1, m.released)
	})

	t.Run("Failed - room not found", func(t *testing.T) {
		svc, m := setupEventRoomService(t)
		tx := m.db.tx

		m.expectLock(testKey)
		m.eventRepo.EXPECT().FindByEventIDWithLock(ctx, tx, testEventID).Return(testEvent, nil).Once()
		m.roomRepo.EXPECT().FindByRoomIDWithLock(ctx, tx, testRoomID).Return(nil, apperrors.NotFound("Room", testRoomID.String())).Once()

		_, err := svc.Create(ctx, req)

		assert.ErrorIs(t, err, apperrors.ErrRoomNotFound)
		assert.False(t, tx.committed)
		assert.True(t, tx.rolledBack)
	})

	t.Run("Failed - duplicate association", func(t *testing.T) {
		svc, m := setupEventRoomService(t)
		tx := m.db.tx

		m.expectLock(testKey)
		m.eventRepo.EXPECT().FindByEventIDWithLock(ctx, tx, testEventID).Return(testEvent, nil).Once()
		m.roomRepo.EXPECT().FindByRoomIDWithLock(ctx, tx, testRoomID).Return(testRoom, nil).Once()
		m.eventRoomRepo.EXPECT().FindByKeysWithLock(ctx, tx, testEventID, testRoomID).Return(&model.EventRoom{ID: 3, EventID: testEventID, RoomID: testRoomID}, nil).Once()

		_, err := svc.Create(ctx, req)

		assert.ErrorIs(t, err, apperrors.ErrConflict)
		assert.ErrorIs(t, err, apperrors.ErrDuplicateEventRoom)
		assert.False(t, tx.committed)
		m.eventRoomRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failed - unique violation on insert", func(t *testing.T) {
		svc, m := setupEventRoomService(t)
		tx := m.db.tx

		m.expectLock(testKey)
		m.eventRepo.EXPECT().FindByEventIDWithLock(ctx, tx, testEventID).Return(testEvent, nil).Once()
		m.roomRepo.EXPECT().FindByRoomIDWithLock(ctx, tx, testRoomID).Return(testRoom, nil).Once()
		m.eventRoomRepo.EXPECT().FindByKeysWithLock(ctx, tx, testEventID, testRoomID).Return(nil, apperrors.ErrEventRoomNotFound).Once()
		m.eventRoomRepo.EXPECT().Add(ctx, tx, mock.Anything).Return(apperrors.Conflict(apperrors.ErrDuplicateEventRoom.Reason, testKey.String())).Once()

		_, err := svc.Create(ctx, req)

		assert.ErrorIs(t, err, apperrors.ErrDuplicateEventRoom)
		assert.False(t, tx.committed)
		assert.True(t, tx.rolledBack)
	})

	t.Run("Failed - lookup error is not treated as absent", func(t *testing.T) {
		svc, m := setupEventRoomService(t)
		tx := m.db.tx

		m.expectLock(testKey)
		m.eventRepo.EXPECT().FindByEventIDWithLock(ctx, tx, testEventID).Return(testEvent, nil).Once()
		m.roomRepo.EXPECT().FindByRoomIDWithLock(ctx, tx, testRoomID).Return(testRoom, nil).Once()
		m.eventRoomRepo.EXPECT().FindByKeysWithLock(ctx, tx, testEventID, testRoomID).Return(nil, &pgconn.PgError{Code: "40P01"}).Once()

		_, err := svc.Create(ctx, req)

		require.Error(t, err)
		assert.NotErrorIs(t, err, apperrors.ErrNotFound)
		assert.False(t, tx.committed)
	})

	t.Run("Failed - commit error", func(t *testing.T) {
		svc, m := setupEventRoomService(t)
		tx := m.db.tx
		tx.commitErr = errDB

		m.expectLock(testKey)
		m.eventRepo.EXPECT().FindByEventIDWithLock(ctx, tx, testEventID).Return(testEvent, nil).Once()
		m.roomRepo.EXPECT().FindByRoomIDWithLock(ctx, tx, testRoomID).Return(testRoom, nil).Once()
		m.eventRoomRepo.EXPECT().FindByKeysWithLock(ctx, tx, testEventID, testRoomID).Return(nil, apperrors.ErrEventRoomNotFound).Once()
		m.eventRoomRepo.EXPECT().Add(ctx, tx, mock.Anything).Return(nil).Once()

		_, err := svc.Create(ctx, req)

		assert.ErrorIs(t, err, errDB)
		m.changeQueue.AssertNotCalled(t, "PublishChange", mock.Anything, mock.Anything)
	})
}

func TestEventRoomService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, m := setupEventRoomService(t)
		record := &model.EventRoom{ID: 1, EventID: testEventID, RoomID: testRoomID, Event: testEvent, Room: testRoom}

		m.eventRoomRepo.EXPECT().FindByKeys(ctx, testEventID, testRoomID).Return(record, nil).Once()

		got, err := svc.Get(ctx, testEventID, testRoomID)

		require.NoError(t, err)
		assert.Equal(t, record, got)
	})

	t.Run("Failed - not found", func(t *testing.T) {
		svc, m := setupEventRoomService(t)

		m.eventRoomRepo.EXPECT().FindByKeys(ctx, testEventID, testRoomID).Return(nil, apperrors.NotFound("EventRoom", testKey.String())).Once()

		_, err := svc.Get(ctx, testEventID, testRoomID)

		assert.ErrorIs(t, err, apperrors.ErrEventRoomNotFound)
	})
}

func records(n int) []*model.EventRoom {
	out := make([]*model.EventRoom, n)
	for i := range out {
		out[i] = &model.EventRoom{ID: i + 1, EventID: uuid.New(), RoomID: uuid.New()}
	}
	return out
}

func TestEventRoomService_ListFiltered(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - defaults applied", func(t *testing.T) {
		svc, m := setupEventRoomService(t)
		normalized := model.EventRoomFilter{PageNumber: 1, PageSize: 10}

		m.eventRoomRepo.EXPECT().Count(mock.Anything, normalized).Return(25, nil).Once()
		m.eventRoomRepo.EXPECT().FindPage(mock.Anything, normalized, true).Return(records(10), nil).Once()

		result, err := svc.ListFiltered(ctx, model.EventRoomFilter{})

		require.NoError(t, err)
		assert.Len(t, result.Items, 10)
		assert.Equal(t, 1, result.PageIndex)
		assert.Equal(t, 10, result.PageSize)
		assert.Equal(t, 25, result.TotalCount)
		assert.Equal(t, 3, result.TotalPages)
		assert.False(t, result.HasPreviousPage)
		assert.True(t, result.HasNextPage)
	})

	t.Run("Success - last page", func(t *testing.T) {
		svc, m := setupEventRoomService(t)
		filter := model.EventRoomFilter{PageNumber: 3, PageSize: 10}

		m.eventRoomRepo.EXPECT().Count(mock.Anything, filter).Return(25, nil).Once()
		m.eventRoomRepo.EXPECT().FindPage(mock.Anything, filter, true).Return(records(5), nil).Once()

		result, err := svc.ListFiltered(ctx, filter)

		require.NoError(t, err)
		assert.Len(t, result.Items, 5)
		assert.True(t, result.HasPreviousPage)
		assert.False(t, result.HasNextPage)
	})

	t.Run("Success - page beyond range", func(t *testing.T) {
		svc, m := setupEventRoomService(t)
		filter := model.EventRoomFilter{PageNumber: 9, PageSize: 10}

		m.eventRoomRepo.EXPECT().Count(mock.Anything, filter).Return(25, nil).Once()
		m.eventRoomRepo.EXPECT().FindPage(mock.Anything, filter, true).Return([]*model.EventRoom{}, nil).Once()

		result, err := svc.ListFiltered(ctx, filter)

		require.NoError(t, err)
		assert.Empty(t, result.Items)
		assert.Equal(t, 25, result.TotalCount)
		assert.Equal(t, 3, result.TotalPages)
		assert.True(t, result.HasPreviousPage)
		assert.False(t, result.HasNextPage)
	})

	t.Run("Success - empty result", func(t *testing.T) {
		svc, m := setupEventRoomService(t)
		filter := model.EventRoomFilter{PageNumber: 1, PageSize: 10}

		m.eventRoomRepo.EXPECT().Count(mock.Anything, filter).Return(0, nil).Once()
		m.eventRoomRepo.EXPECT().FindPage(mock.Anything, filter, true).Return(nil, nil).Once()

		result, err := svc.ListFiltered(ctx, filter)

		require.NoError(t, err)
		assert.NotNil(t, result.Items)
		assert.Empty(t, result.Items)
		assert.Equal(t, 0, result.TotalPages)
		assert.False(t, result.HasPreviousPage)
		assert.False(t, result.HasNextPage)
	})

	t.Run("Success - filter ids are passed through without existence checks", func(t *testing.T) {
		svc, m := setupEventRoomService(t)
		unknown := uuid.New()
		filter := model.EventRoomFilter{EventID: &unknown, PageNumber: 1, PageSize: 5}

		m.eventRoomRepo.EXPECT().Count(mock.Anything, filter).Return(0, nil).Once()
		m.eventRoomRepo.EXPECT().FindPage(mock.Anything, filter, true).Return([]*model.EventRoom{}, nil).Once()

		result, err := svc.ListFiltered(ctx, filter)

		require.NoError(t, err)
		assert.Empty(t, result.Items)
		m.eventRepo.AssertNotCalled(t, "FindByEventID", mock.Anything, mock.Anything)
	})

	t.Run("Failed - count error", func(t *testing.T) {
		svc, m := setupEventRoomService(t)
		filter := model.EventRoomFilter{PageNumber: 1, PageSize: 10}

		m.eventRoomRepo.EXPECT().Count(mock.Anything, filter).Return(0, errDB).Once()
		m.eventRoomRepo.EXPECT().FindPage(mock.Anything, filter, true).Return(records(1), nil).Maybe()

		_, err := svc.ListFiltered(ctx, filter)

		assert.ErrorIs(t, err, errDB)
	})
}

func TestEventRoomService_Delete(t *testing.T) {
	ctx := service.WithActor(context.Background(), "bob")
	existing := &model.EventRoom{ID: 3, EventID: testEventID, RoomID: testRoomID}

	t.Run("Success", func(t *testing.T) {
		svc, m := setupEventRoomService(t)
		tx := m.db.tx

		m.eventRoomRepo.EXPECT().FindByKeysWithLock(ctx, tx, testEventID, testRoomID).Return(existing, nil).Once()
		m.eventRoomRepo.EXPECT().DeleteByKeys(ctx, tx, testEventID, testRoomID).Return(nil).Once()
		m.changeQueue.EXPECT().PublishChange(mock.Anything, changeOf(model.ChangeTypeDeleted, testKey, "bob")).Return(nil).Once()

		err := svc.Delete(ctx, testEventID, testRoomID)

		require.NoError(t, err)
		assert.True(t, tx.committed)
	})

	t.Run("Success - default actor", func(t *testing.T) {
		svc, m := setupEventRoomService(t)
		tx := m.db.tx
		plain := context.Background()

		m.eventRoomRepo.EXPECT().FindByKeysWithLock(plain, tx, testEventID, testRoomID).Return(existing, nil).Once()
		m.eventRoomRepo.EXPECT().DeleteByKeys(plain, tx, testEventID, testRoomID).Return(nil).Once()
		m.changeQueue.EXPECT().PublishChange(mock.Anything, changeOf(model.ChangeTypeDeleted, testKey, model.DefaultCreatedBy)).Return(nil).Once()

		require.NoError(t, svc.Delete(plain, testEventID, testRoomID))
	})

	t.Run("Failed - not found", func(t *testing.T) {
		svc, m := setupEventRoomService(t)
		tx := m.db.tx

		m.eventRoomRepo.EXPECT().FindByKeysWithLock(ctx, tx, testEventID, testRoomID).Return(nil, apperrors.NotFound("EventRoom", testKey.String())).Once()

		err := svc.Delete(ctx, testEventID, testRoomID)

		assert.ErrorIs(t, err, apperrors.ErrEventRoomNotFound)
		assert.False(t, tx.committed)
		assert.True(t, tx.rolledBack)
		m.eventRoomRepo.AssertNotCalled(t, "DeleteByKeys", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		m.changeQueue.AssertNotCalled(t, "PublishChange", mock.Anything, mock.Anything)
	})

	t.Run("Failed - second delete reports not found", func(t *testing.T) {
		svc, m := setupEventRoomService(t)
		tx := m.db.tx

		m.eventRoomRepo.EXPECT().FindByKeysWithLock(ctx, tx, testEventID, testRoomID).Return(existing, nil).Once()
		m.eventRoomRepo.EXPECT().DeleteByKeys(ctx, tx, testEventID, testRoomID).Return(nil).Once()
		m.changeQueue.EXPECT().PublishChange(mock.Anything, mock.Anything).Return(nil).Once()
		m.eventRoomRepo.EXPECT().FindByKeysWithLock(ctx, tx, testEventID, testRoomID).Return(nil, apperrors.ErrEventRoomNotFound).Once()

		require.NoError(t, svc.Delete(ctx, testEventID, testRoomID))
		err := svc.Delete(ctx, testEventID, testRoomID)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Equal(t, 2, m.db.begins)
	})

	t.Run("Failed - delete error rolls back", func(t *testing.T) {
		svc, m := setupEventRoomService(t)
		tx := m.db.tx

		m.eventRoomRepo.EXPECT().FindByKeysWithLock(ctx, tx, testEventID, testRoomID).Return(existing, nil).Once()
		m.eventRoomRepo.EXPECT().DeleteByKeys(ctx, tx, testEventID, testRoomID).Return(errDB).Once()

		err := svc.Delete(ctx, testEventID, testRoomID)

		assert.ErrorIs(t, err, errDB)
		assert.False(t, tx.committed)
		assert.True(t, tx.rolledBack)
	})
}

func TestEventRoomService_History(t *testing.T) {
	ctx := context.Background()
	svc, m := setupEventRoomService(t)
	audits := []*model.EventRoomAudit{
		{ID: 1, EventID: testEventID, RoomID: testRoomID, ChangeType: model.ChangeTypeCreated, Actor: "alice"},
		{ID: 2, EventID: testEventID, RoomID: testRoomID, ChangeType: model.ChangeTypeDeleted, Actor: "bob"},
	}

	m.auditRepo.EXPECT().ListByKeys(ctx, testEventID, testRoomID).Return(audits, nil).Once()

	got, err := svc.History(ctx, testEventID, testRoomID)

	require.NoError(t, err)
	assert.Equal(t, audits, got)
}
