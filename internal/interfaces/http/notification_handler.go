package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/lunchcontrol-api/internal/application/dto"
	"github.com/jhoicas/lunchcontrol-api/internal/application/ports"
)

// NotificationSource fuente de los avisos recientes (feed en memoria).
type NotificationSource interface {
	Recent(limit int) []ports.Notification
}

// NotificationHandler expone los avisos para que el cliente los muestre como toast.
type NotificationHandler struct {
	src NotificationSource
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(src NotificationSource) *NotificationHandler {
	return &NotificationHandler{src: src}
}

// List godoc
// @Summary      Avisos recientes
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Máximo de avisos"  default(20)
// @Success      200    {object}  dto.NotificationListResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit <= 0 {
		limit = 20
	}
	items := h.src.Recent(limit)
	out := dto.NotificationListResponse{Items: make([]dto.NotificationResponse, 0, len(items))}
	for _, n := range items {
		out.Items = append(out.Items, dto.NotificationResponse{
			Level:   n.Level,
			Message: n.Message,
			Sound:   n.Sound,
			At:      n.At.Format(time.RFC3339),
		})
	}
	return c.JSON(out)
}
