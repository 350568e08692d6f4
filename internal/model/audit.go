package model

import (
	"time"

	"github.com/google/uuid"
)

type ChangeType string

const (
	ChangeTypeCreated ChangeType = "created"
	ChangeTypeDeleted ChangeType = "deleted"
)

func (t ChangeType) IsValid() bool {
	switch t {
	case ChangeTypeCreated, ChangeTypeDeleted:
		return true
	}
	return false
}

// AssociationChange 關聯建立/刪除後發送到 change queue 的訊息
type AssociationChange struct {
	Type       ChangeType `json:"type"`
	EventID    uuid.UUID  `json:"event_id"`
	RoomID     uuid.UUID  `json:"room_id"`
	Actor      string     `json:"actor"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// EventRoomAudit 稽核紀錄
type EventRoomAudit struct {
	ID         int        `json:"id" db:"id"`
	EventID    uuid.UUID  `json:"event_id" db:"event_id"`
	RoomID     uuid.UUID  `json:"room_id" db:"room_id"`
	ChangeType ChangeType `json:"change_type" db:"change_type"`
	Actor      string     `json:"actor" db:"actor"`
	OccurredAt time.Time  `json:"occurred_at" db:"occurred_at"`
	RecordedAt time.Time  `json:"recorded_at" db:"recorded_at"`
}
