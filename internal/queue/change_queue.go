package queue

import (
	"context"
	"go-gin-event-room/internal/model"
)

type Delivery struct {
	Data *model.AssociationChange
	Ack  func()
	Nack func(requeue bool)
}

type ChangeQueue interface {
	// 發送關聯異動到隊列
	PublishChange(ctx context.Context, change *model.AssociationChange) error
	// 訂閱關聯異動
	SubscribeChanges(ctx context.Context) (<-chan Delivery, error)
}

type ChangeQueueImpl struct {
	// 使用 Go channel 來模擬 MQ 隊列
	ch chan *model.AssociationChange
}

func NewChangeQueue(bufferSize int) ChangeQueue {
	return &ChangeQueueImpl{
		ch: make(chan *model.AssociationChange, bufferSize),
	}
}

func (q *ChangeQueueImpl) PublishChange(ctx context.Context, change *model.AssociationChange) error {
	select {
	case q.ch <- change:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *ChangeQueueImpl) SubscribeChanges(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case change, ok := <-q.ch:
				if !ok {
					return
				}

				d := Delivery{
					Data: change,
					Ack:  func() {},
					Nack: func(requeue bool) {
						if requeue {
							// 簡單模擬重回隊列；隊列已滿時丟棄
							select {
							case q.ch <- change:
							default:
							}
						}
					},
				}
				select {
				case out <- d:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
