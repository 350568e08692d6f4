package service

import (
	"context"

	"go-gin-event-room/internal/model"
)

type actorKey struct{}

// WithActor 把操作者放進 ctx，供刪除等沒有 request body 的操作記錄異動者
func WithActor(ctx context.Context, actor string) context.Context {
	if actor == "" {
		return ctx
	}
	return context.WithValue(ctx, actorKey{}, actor)
}

func actorFromContext(ctx context.Context) string {
	if actor, ok := ctx.Value(actorKey{}).(string); ok && actor != "" {
		return actor
	}
	return model.DefaultCreatedBy
}
