package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
	MaxPageSize       = 100

	DefaultCreatedBy = "system"
)

// EventRoom 活動與場地的關聯，(EventID, RoomID) 唯一
type EventRoom struct {
	ID        int       `json:"id" db:"id"`
	EventID   uuid.UUID `json:"event_id" db:"event_id"`
	RoomID    uuid.UUID `json:"room_id" db:"room_id"`
	CreatedBy string    `json:"created_by" db:"created_by"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// 預先載入時才有值，唯讀
	Event *Event `json:"event,omitempty" db:"-"`
	Room  *Room  `json:"room,omitempty" db:"-"`
}

// EventRoomKey 複合鍵
type EventRoomKey struct {
	EventID uuid.UUID
	RoomID  uuid.UUID
}

func (k EventRoomKey) String() string {
	return fmt.Sprintf("%s/%s", k.EventID, k.RoomID)
}

func (er *EventRoom) Key() EventRoomKey {
	return EventRoomKey{EventID: er.EventID, RoomID: er.RoomID}
}

// CreateEventRoomRequest 建立關聯請求
type CreateEventRoomRequest struct {
	EventID   uuid.UUID `json:"event_id" binding:"required"`
	RoomID    uuid.UUID `json:"room_id" binding:"required"`
	CreatedBy string    `json:"created_by"`
}

// EventRoomFilter 列表查詢條件，未設定的 ID 不參與過濾
type EventRoomFilter struct {
	EventID    *uuid.UUID
	RoomID     *uuid.UUID
	PageNumber int
	PageSize   int
}

// Normalize 補上預設分頁參數
func (f EventRoomFilter) Normalize() EventRoomFilter {
	if f.PageNumber < 1 {
		f.PageNumber = DefaultPageNumber
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	return f
}

func (f EventRoomFilter) Offset() int {
	return (f.PageNumber - 1) * f.PageSize
}
