package controllers

import (
	"github.com/tuananhtran-web/orderbanhmi/pkg/resp"
	"github.com/tuananhtran-web/orderbanhmi/services"
	"github.com/tuananhtran-web/orderbanhmi/utils"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	Notifications *services.NotificationService
}

func NewNotificationController(n *services.NotificationService) *NotificationController {
	return &NotificationController{Notifications: n}
}

// GET /notifications
func (n *NotificationController) List(c *gin.Context) {
	items, err := n.Notifications.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	unread, err := n.Notifications.CountUnread(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "unread": unread})
}

// PATCH /notifications/:id/read
func (n *NotificationController) MarkRead(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := n.Notifications.MarkRead(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"read": id})
}

// POST /notifications/read-all
func (n *NotificationController) MarkAllRead(c *gin.Context) {
	if err := n.Notifications.MarkAllRead(utils.CurrentUserID(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"readAll": true})
}
