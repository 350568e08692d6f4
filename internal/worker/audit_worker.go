package worker

import (
	"context"
	"errors"
	"fmt"

	"go-gin-event-room/internal/queue"
	"go-gin-event-room/internal/repository"
	apperrors "go-gin-event-room/pkg/app_errors"
	"go-gin-event-room/pkg/logger"

	"go.uber.org/zap"
)

type AuditWorker interface {
	// 訂閱關聯異動並寫入稽核紀錄；回傳的 channel 在 worker 結束後關閉
	Start(ctx context.Context) (<-chan struct{}, error)
}

type AuditWorkerImpl struct {
	repo  repository.AuditRepository
	queue queue.ChangeQueue
}

func NewAuditWorker(repo repository.AuditRepository, queue queue.ChangeQueue) AuditWorker {
	return &AuditWorkerImpl{
		repo:  repo,
		queue: queue,
	}
}

func (w *AuditWorkerImpl) Start(ctx context.Context) (<-chan struct{}, error) {
	msgs, err := w.queue.SubscribeChanges(ctx)
	if err != nil {
		return nil, fmt.Errorf("subscribe changes: %w", err)
	}

	log := logger.WithComponent("worker")
	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range msgs {
			change := msg.Data
			_, err := w.repo.Insert(ctx, change)
			switch {
			case err == nil:
				msg.Ack()
			case errors.Is(err, apperrors.ErrInvalidInput):
				// 重試也不會成功，直接 ack 丟棄
				log.Error("discard invalid change",
					zap.String("type", string(change.Type)),
					zap.String("event_id", change.EventID.String()),
					zap.String("room_id", change.RoomID.String()),
					zap.Error(err))
				msg.Ack()
			default:
				// 資料庫暫時無法寫入，留給 queue 重試
				log.Warn("record audit failed",
					zap.String("type", string(change.Type)),
					zap.String("event_id", change.EventID.String()),
					zap.String("room_id", change.RoomID.String()),
					zap.Error(err))
				msg.Nack(true)
			}
		}
	}()
	return done, nil
}
