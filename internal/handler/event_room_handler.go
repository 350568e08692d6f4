package handler

import (
	"fmt"
	"net/http"

	"go-gin-event-room/internal/model"
	"go-gin-event-room/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventRoomHandler struct {
	service service.EventRoomService
}

func NewEventRoomHandler(service service.EventRoomService) *EventRoomHandler {
	return &EventRoomHandler{service: service}
}

func (h *EventRoomHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("event-rooms", h.Create)
		router.GET("event-rooms", h.List)
		router.GET("event-rooms/:event_id/:room_id", h.Get)
		router.DELETE("event-rooms/:event_id/:room_id", h.Delete)
		router.GET("event-rooms/:event_id/:room_id/history", h.History)
	}
}

// ListEventRoomsQuery 列表查詢參數
type ListEventRoomsQuery struct {
	EventID    string `form:"event_id" binding:"omitempty,uuid"`
	RoomID     string `form:"room_id" binding:"omitempty,uuid"`
	PageNumber int    `form:"page_number" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1"`
}

func (q ListEventRoomsQuery) toFilter() model.EventRoomFilter {
	filter := model.EventRoomFilter{
		PageNumber: q.PageNumber,
		PageSize:   q.PageSize,
	}
	if id, err := uuid.Parse(q.EventID); err == nil {
		filter.EventID = &id
	}
	if id, err := uuid.Parse(q.RoomID); err == nil {
		filter.RoomID = &id
	}
	return filter
}

// eventRoomUri 複合鍵路徑 /:event_id/:room_id
type eventRoomUri struct {
	EventID string `uri:"event_id" binding:"required,uuid"`
	RoomID  string `uri:"room_id" binding:"required,uuid"`
}

func (h *EventRoomHandler) keys(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	var uri eventRoomUri
	if err := BindUri(c, &uri); err != nil {
		return uuid.Nil, uuid.Nil, false
	}
	return uuid.MustParse(uri.EventID), uuid.MustParse(uri.RoomID), true
}

func (h *EventRoomHandler) Create(c *gin.Context) {
	var req model.CreateEventRoomRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if req.CreatedBy == "" {
		req.CreatedBy = c.GetHeader(UserIDHeader)
	}

	created, err := h.service.Create(c, req)
	if err != nil {
		handleError(c, err, "CreateEventRoom")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *EventRoomHandler) List(c *gin.Context) {
	var query ListEventRoomsQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}
	if query.PageSize > model.MaxPageSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("page_size must not exceed %d", model.MaxPageSize),
		})
		return
	}

	result, err := h.service.ListFiltered(c, query.toFilter())
	if err != nil {
		handleError(c, err, "ListEventRooms")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *EventRoomHandler) Get(c *gin.Context) {
	eventID, roomID, ok := h.keys(c)
	if !ok {
		return
	}

	record, err := h.service.Get(c, eventID, roomID)
	if err != nil {
		handleError(c, err, "GetEventRoom")
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *EventRoomHandler) Delete(c *gin.Context) {
	eventID, roomID, ok := h.keys(c)
	if !ok {
		return
	}

	ctx := service.WithActor(c, c.GetHeader(UserIDHeader))
	if err := h.service.Delete(ctx, eventID, roomID); err != nil {
		handleError(c, err, "DeleteEventRoom")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EventRoomHandler) History(c *gin.Context) {
	eventID, roomID, ok := h.keys(c)
	if !ok {
		return
	}

	audits, err := h.service.History(c, eventID, roomID)
	if err != nil {
		handleError(c, err, "EventRoomHistory")
		return
	}
	c.JSON(http.StatusOK, audits)
}
