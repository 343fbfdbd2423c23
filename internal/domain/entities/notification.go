package entities

import "time"

type NotificationType string

const (
	NotificationTypePayment NotificationType = "payment"
	NotificationTypeOrder   NotificationType = "order"
)

type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "pending"
	NotificationStatusRead    NotificationStatus = "read"
)

// Notification is the customer-facing message row inserted by best-effort
// stages; its creation never gates the primary operation.
//
// Storage model (DynamoDB):
//   - PK: id (string)
//   - GSI1 (user_id-index): user_id
type Notification struct {
	ID        string             `json:"id"`
	UserID    string             `json:"user_id"`
	Type      NotificationType   `json:"type"`
	Content   string             `json:"content"`
	Status    NotificationStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
}
