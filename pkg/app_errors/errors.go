package apperrors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternalServerError = errors.New("internal server error")
)

// 各資源的 NotFound，可用 errors.Is 比對
var (
	ErrEventNotFound     = &NotFoundError{Resource: "Event"}
	ErrRoomNotFound      = &NotFoundError{Resource: "Room"}
	ErrEventRoomNotFound = &NotFoundError{Resource: "EventRoom"}

	ErrDuplicateEventRoom = &ConflictError{Reason: "duplicate association"}
	ErrEventRoomLocked    = &ConflictError{Reason: "association creation in progress"}
)

// NotFoundError 被引用或操作的資源不存在
type NotFoundError struct {
	Resource string
	Key      string
}

func NotFound(resource, key string) *NotFoundError {
	return &NotFoundError{Resource: resource, Key: key}
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

// Is matches ErrNotFound and any *NotFoundError for the same resource.
// A target without a Key matches every key.
func (e *NotFoundError) Is(target error) bool {
	if target == ErrNotFound {
		return true
	}
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return t.Resource == e.Resource && (t.Key == "" || t.Key == e.Key)
}

// ConflictError 違反唯一性約束
type ConflictError struct {
	Reason string
	Key    string
}

func Conflict(reason, key string) *ConflictError {
	return &ConflictError{Reason: reason, Key: key}
}

func (e *ConflictError) Error() string {
	if e.Key == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Key)
}

func (e *ConflictError) Is(target error) bool {
	if target == ErrConflict {
		return true
	}
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return t.Reason == e.Reason && (t.Key == "" || t.Key == e.Key)
}

const uniqueViolation = "23505"

// IsUniqueViolation 判斷是否為 Postgres unique_violation
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
