package domain

import "time"

type NotificationType string

const (
	NotificationBooking   NotificationType = "booking"
	NotificationPayment   NotificationType = "payment"
	NotificationPromotion NotificationType = "promotion"
	NotificationSystem    NotificationType = "system"
)

type Notification struct {
	ID        string
	UserID    string
	Title     string
	Message   string
	Type      NotificationType
	IsRead    bool
	BookingID string
	CreatedAt time.Time
}
