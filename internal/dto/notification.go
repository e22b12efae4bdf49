package dto

import (
	"time"

	"github.com/SscSPs/pasale_ledger/internal/core/domain"
)

// CreateNotificationRequest defines the data needed to post a notification.
type CreateNotificationRequest struct {
	Title   string                  `json:"title" binding:"required"`
	Message string                  `json:"message"`
	Type    domain.NotificationType `json:"type" binding:"required,oneof=info warning success error"`
}

// NotificationResponse mirrors domain.Notification.
type NotificationResponse struct {
	ID      string                  `json:"id"`
	Title   string                  `json:"title"`
	Message string                  `json:"message"`
	Type    domain.NotificationType `json:"type"`
	Date    time.Time               `json:"date"`
	Read    bool                    `json:"read"`
}

// ListNotificationsResponse carries every notification and the unread count.
type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Unread        int                    `json:"unread"`
}

// ToNotificationResponse converts a domain.Notification.
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse(*n)
}

// ToListNotificationsResponse converts a slice of notifications.
func ToListNotificationsResponse(ns []domain.Notification, unread int) ListNotificationsResponse {
	res := ListNotificationsResponse{
		Notifications: make([]NotificationResponse, len(ns)),
		Unread:        unread,
	}
	for i := range ns {
		res.Notifications[i] = ToNotificationResponse(&ns[i])
	}
	return res
}
