package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-steps/internal/core/workers"
)

type NotificationSource interface {
	Current() (*workers.Notification, bool)
}

type NotificationHandler struct {
	source NotificationSource
}

func NewNotificationHandler(source NotificationSource) *NotificationHandler {
	return &NotificationHandler{source: source}
}

func (h *NotificationHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/notifications/current", h.Current)
}

// Current godoc
// @Summary  Latest confirmation, while it is still visible
// @Tags     notifications
// @Produce  json
// @Success  200  {object}  workers.Notification
// @Success  204
// @Router   /notifications/current [get]
func (h *NotificationHandler) Current(c *gin.Context) {
	n, ok := h.source.Current()
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, n)
}
