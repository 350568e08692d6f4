package model

import (
	"time"

	"github.com/google/uuid"
)

// Room 場地模型
type Room struct {
	ID        int       `json:"id" db:"id"`
	RoomID    uuid.UUID `json:"room_id" db:"room_id"`
	Name      string    `json:"name" db:"name"`
	Capacity  int       `json:"capacity" db:"capacity"`
	Location  *string   `json:"location,omitempty" db:"location"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
