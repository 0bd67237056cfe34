package services

import (
	"context"
	"fmt"

	"github.com/rajwantprajapati/devTinder/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feed pagination bounds.
const (
	defaultFeedLimit = 10
	maxFeedLimit     = 50
)

// ConnectionStore is the persistence surface of the connection request
// engine.
type ConnectionStore interface {
	CreateRequest(ctx context.Context, req *models.ConnectionRequest) (*models.ConnectionRequest, error)
	FindBetweenUsers(ctx context.Context, a, b primitive.ObjectID) (*models.ConnectionRequest, error)
	FindPendingForReview(ctx context.Context, id, reviewerID primitive.ObjectID) (*models.ConnectionRequest, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.ConnectionRequest, error)
	GetReceivedRequests(ctx context.Context, toUserID primitive.ObjectID) ([]models.ConnectionRequest, error)
	GetAcceptedForUser(ctx context.Context, userID primitive.ObjectID) ([]models.ConnectionRequest, error)
	GetAllForUser(ctx context.Context, userID primitive.ObjectID) ([]models.ConnectionRequest, error)
}

// ReceivedRequest pairs a pending request with its sender's public fields.
type ReceivedRequest struct {
	Request  models.ConnectionRequest `json:"request"`
	FromUser models.SafeUser          `json:"fromUser"`
}

// ConnectionService implements the connection request state machine and
// the discovery feed.
type ConnectionService struct {
	connRepo      ConnectionStore
	userRepo      UserStore
	notifications *NotificationService
}

// NewConnectionService creates a new ConnectionService. notifications may
// be nil.
func NewConnectionService(connRepo ConnectionStore, userRepo UserStore, notifications *NotificationService) *ConnectionService {
	return &ConnectionService{
		connRepo:      connRepo,
		userRepo:      userRepo,
		notifications: notifications,
	}
}

// SendRequest creates a new connection request from fromUser in the given
// status ("interested" or "ignored").
func (s *ConnectionService) SendRequest(ctx context.Context, fromUser *models.User, toUserIDHex, status string) (*models.ConnectionRequest, error) {
	if status != models.StatusInterested && status != models.StatusIgnored {
		return nil, validationError("%q is not a valid status type", status)
	}

	toUserID, err := primitive.ObjectIDFromHex(toUserIDHex)
	if err != nil {
		return nil, validationError("invalid user ID")
	}

	if fromUser.ID == toUserID {
		return nil, validationError("you can not send request to yourself")
	}

	toUser, err := s.userRepo.GetUserByID(ctx, toUserID)
	if err != nil {
		return nil, fmt.Errorf("target user: %w", err)
	}

	existing, err := s.connRepo.FindBetweenUsers(ctx, fromUser.ID, toUserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		logrus.WithFields(logrus.Fields{
			"fromUserID": fromUser.ID.Hex(),
			"toUserID":   toUserID.Hex(),
		}).Warn("Duplicate connection request attempt")
		return nil, fmt.Errorf("connection request already exists between these users: %w", models.ErrDuplicate)
	}

	request := &models.ConnectionRequest{
		FromUserID: fromUser.ID,
		ToUserID:   toUserID,
		Status:     status,
	}

	created, err := s.connRepo.CreateRequest(ctx, request)
	if err != nil {
		return nil, err
	}

	if status == models.StatusInterested && s.notifications != nil {
		if err := s.notifications.NotifyRequestReceived(ctx, toUser.ID, fromUser, created.ID); err != nil {
			logrus.WithError(err).Warn("Failed to create request-received notification")
		}
	}

	return created, nil
}

// ReviewRequest lets the recipient of a pending request accept or reject
// it. A request that is not addressed to the reviewer, or is not in the
// interested state, is reported as not found.
func (s *ConnectionService) ReviewRequest(ctx context.Context, reviewer *models.User, requestIDHex, status string) (*models.ConnectionRequest, error) {
	if status != models.StatusAccepted && status != models.StatusRejected {
		return nil, validationError("%q is not a valid status type", status)
	}

	requestID, err := primitive.ObjectIDFromHex(requestIDHex)
	if err != nil {
		return nil, validationError("invalid request ID")
	}

	request, err := s.connRepo.FindPendingForReview(ctx, requestID, reviewer.ID)
	if err != nil {
		return nil, err
	}

	updated, err := s.connRepo.UpdateStatus(ctx, request.ID, status)
	if err != nil {
		return nil, err
	}

	if status == models.StatusAccepted && s.notifications != nil {
		if err := s.notifications.NotifyRequestAccepted(ctx, updated.FromUserID, reviewer, updated.ID); err != nil {
			logrus.WithError(err).Warn("Failed to create request-accepted notification")
		}
	}

	return updated, nil
}

// GetReceivedRequests returns the pending requests addressed to a user,
// with each sender projected to public fields.
func (s *ConnectionService) GetReceivedRequests(ctx context.Context, user *models.User) ([]ReceivedRequest, error) {
	requests, err := s.connRepo.GetReceivedRequests(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(requests) == 0 {
		return []ReceivedRequest{}, nil
	}

	senderIDs := make([]primitive.ObjectID, 0, len(requests))
	for _, req := range requests {
		senderIDs = append(senderIDs, req.FromUserID)
	}

	senders, err := s.userRepo.GetUsersByIDs(ctx, senderIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch senders: %w", err)
	}

	byID := make(map[primitive.ObjectID]models.User, len(senders))
	for _, sender := range senders {
		byID[sender.ID] = sender
	}

	received := make([]ReceivedRequest, 0, len(requests))
	for _, req := range requests {
		sender, ok := byID[req.FromUserID]
		if !ok {
			// Sender account deleted after sending; skip the orphan.
			continue
		}
		received = append(received, ReceivedRequest{
			Request:  req,
			FromUser: sender.Safe(),
		})
	}

	return received, nil
}

// GetConnections returns the public fields of every user connected to the
// given user through an accepted request.
func (s *ConnectionService) GetConnections(ctx context.Context, user *models.User) ([]models.SafeUser, error) {
	requests, err := s.connRepo.GetAcceptedForUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(requests) == 0 {
		return []models.SafeUser{}, nil
	}

	counterpartIDs := make([]primitive.ObjectID, 0, len(requests))
	for _, req := range requests {
		counterpartIDs = append(counterpartIDs, req.Counterpart(user.ID))
	}

	users, err := s.userRepo.GetUsersByIDs(ctx, counterpartIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch connections: %w", err)
	}

	connections := make([]models.SafeUser, 0, len(users))
	for _, u := range users {
		connections = append(connections, u.Safe())
	}

	return connections, nil
}

// GetFeed returns one page of discoverable users for the given user,
// excluding the user themselves and anyone appearing in any connection
// record involving them, regardless of that record's status.
func (s *ConnectionService) GetFeed(ctx context.Context, user *models.User, page, limit int64) ([]models.SafeUser, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}

	requests, err := s.connRepo.GetAllForUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	seen := map[primitive.ObjectID]bool{user.ID: true}
	excludeIDs := []primitive.ObjectID{user.ID}
	for _, req := range requests {
		for _, id := range []primitive.ObjectID{req.FromUserID, req.ToUserID} {
			if !seen[id] {
				seen[id] = true
				excludeIDs = append(excludeIDs, id)
			}
		}
	}

	users, err := s.userRepo.GetFeedPage(ctx, excludeIDs, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	feed := make([]models.SafeUser, 0, len(users))
	for _, u := range users {
		feed = append(feed, u.Safe())
	}

	logrus.WithFields(logrus.Fields{
		"userID": user.ID.Hex(),
		"page":   page,
		"count":  len(feed),
	}).Info("Feed page composed")
	return feed, nil
}
