package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification types emitted by the connection workflow.
const (
	NotificationRequestReceived = "request_received"
	NotificationRequestAccepted = "request_accepted"
)

// Notification is a short-lived per-user event record.
type Notification struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID  `bson:"user_id" json:"userId"`
	Type      string              `bson:"type" json:"type"`
	Message   string              `bson:"message" json:"message"`
	Read      bool                `bson:"read" json:"read"`
	RequestID *primitive.ObjectID `bson:"request_id,omitempty" json:"requestId,omitempty"`
	CreatedAt time.Time           `bson:"created_at" json:"createdAt"`
	ExpiresAt time.Time           `bson:"expires_at" json:"expiresAt"`
}
