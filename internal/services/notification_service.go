package services

import (
	"context"
	"fmt"

	"github.com/rajwantprajapati/devTinder/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationStore is the persistence surface for notifications.
type NotificationStore interface {
	CreateNotification(ctx context.Context, notif *models.Notification) error
	GetUserNotifications(ctx context.Context, userID primitive.ObjectID) ([]models.Notification, error)
	GetNotificationByID(ctx context.Context, id primitive.ObjectID) (*models.Notification, error)
	MarkAsRead(ctx context.Context, id primitive.ObjectID) error
	DeleteNotification(ctx context.Context, id primitive.ObjectID) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// NotificationService records and serves connection-workflow events.
type NotificationService struct {
	repo NotificationStore
}

func NewNotificationService(repo NotificationStore) *NotificationService {
	return &NotificationService{repo: repo}
}

// NotifyRequestReceived records that `from` sent userID a connection
// request.
func (s *NotificationService) NotifyRequestReceived(ctx context.Context, userID primitive.ObjectID, from *models.User, requestID primitive.ObjectID) error {
	notif := &models.Notification{
		UserID:    userID,
		Type:      models.NotificationRequestReceived,
		Message:   fmt.Sprintf("%s %s is interested in connecting with you.", from.FirstName, from.LastName),
		RequestID: &requestID,
	}
	return s.repo.CreateNotification(ctx, notif)
}

// NotifyRequestAccepted records that `by` accepted userID's request.
func (s *NotificationService) NotifyRequestAccepted(ctx context.Context, userID primitive.ObjectID, by *models.User, requestID primitive.ObjectID) error {
	notif := &models.Notification{
		UserID:    userID,
		Type:      models.NotificationRequestAccepted,
		Message:   fmt.Sprintf("%s %s accepted your connection request.", by.FirstName, by.LastName),
		RequestID: &requestID,
	}
	return s.repo.CreateNotification(ctx, notif)
}

// GetUserNotifications returns all live notifications for a user.
func (s *NotificationService) GetUserNotifications(ctx context.Context, userID primitive.ObjectID) ([]models.Notification, error) {
	return s.repo.GetUserNotifications(ctx, userID)
}

// MarkAsRead flags a notification as read. Notifications belonging to
// another user are reported as not found.
func (s *NotificationService) MarkAsRead(ctx context.Context, userID, notifID primitive.ObjectID) error {
	notif, err := s.repo.GetNotificationByID(ctx, notifID)
	if err != nil {
		return err
	}
	if notif.UserID != userID {
		return fmt.Errorf("notification %s: %w", notifID.Hex(), models.ErrNotFound)
	}
	return s.repo.MarkAsRead(ctx, notifID)
}

// Delete removes a notification owned by userID.
func (s *NotificationService) Delete(ctx context.Context, userID, notifID primitive.ObjectID) error {
	notif, err := s.repo.GetNotificationByID(ctx, notifID)
	if err != nil {
		return err
	}
	if notif.UserID != userID {
		return fmt.Errorf("notification %s: %w", notifID.Hex(), models.ErrNotFound)
	}
	return s.repo.DeleteNotification(ctx, notifID)
}

// PurgeExpired removes notifications past their expiry. Called from the
// cron scheduler.
func (s *NotificationService) PurgeExpired(ctx context.Context) error {
	deleted, err := s.repo.DeleteExpired(ctx)
	if err != nil {
		return err
	}
	if deleted > 0 {
		logrus.Infof("Deleted %d expired notifications", deleted)
	}
	return nil
}
