package handler

import (
	"net/http"

	"go-gin-event-room/internal/model"
	"go-gin-event-room/internal/service"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	service service.RoomService
}

func NewRoomHandler(service service.RoomService) *RoomHandler {
	return &RoomHandler{service: service}
}

func (h *RoomHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("rooms", h.List)
		router.GET("rooms/:uuid", h.GetByRoomID)
		router.POST("rooms", h.Create)
	}
}

// CreateRoomRequest 建立場地請求
type CreateRoomRequest struct {
	Name     string  `json:"name" binding:"required"`
	Capacity int     `json:"capacity" binding:"min=0"`
	Location *string `json:"location"`
}

func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.service.List(c)
	if err != nil {
		handleError(c, err, "ListRooms")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (h *RoomHandler) GetByRoomID(c *gin.Context) {
	var uri resourceUri
	if err := BindUri(c, &uri); err != nil {
		return
	}
	roomID := uri.id()
	room, err := h.service.GetByRoomID(c, roomID)
	if err != nil {
		handleError(c, err, "GetByRoomID")
		return
	}
	c.JSON(http.StatusOK, room)
}

func (h *RoomHandler) Create(c *gin.Context) {
	var req CreateRoomRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	room := &model.Room{
		Name:     req.Name,
		Capacity: req.Capacity,
		Location: req.Location,
	}
	created, err := h.service.Create(c, room)
	if err != nil {
		handleError(c, err, "CreateRoom")
		return
	}
	c.JSON(http.StatusCreated, created)
}
