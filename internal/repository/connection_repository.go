package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rajwantprajapati/devTinder/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectionRepository handles persistence of connection requests.
type ConnectionRepository struct {
	collection *mongo.Collection
}

func NewConnectionRepository(db *mongo.Database) *ConnectionRepository {
	return &ConnectionRepository{
		collection: db.Collection("connection_requests"),
	}
}

// CreateRequest inserts a new connection request. The unique index on
// pair_key turns a concurrent insert for the same pair into ErrDuplicate.
func (r *ConnectionRepository) CreateRequest(ctx context.Context, req *models.ConnectionRequest) (*models.ConnectionRequest, error) {
	req.CreatedAt = time.Now()
	req.UpdatedAt = req.CreatedAt
	req.PairKey = models.PairKey(req.FromUserID, req.ToUserID)

	result, err := r.collection.InsertOne(ctx, req)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("connection request already exists between these users: %w", models.ErrDuplicate)
		}
		logrus.WithError(err).Error("Failed to insert connection request")
		return nil, fmt.Errorf("failed to create connection request: %v", err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("failed to cast inserted ID")
	}
	req.ID = insertedID

	logrus.WithFields(logrus.Fields{
		"requestID": req.ID.Hex(),
		"status":    req.Status,
	}).Info("Connection request created")
	return req, nil
}

// FindBetweenUsers returns the request between two users in either
// direction and any status, or nil when none exists.
func (r *ConnectionRepository) FindBetweenUsers(ctx context.Context, a, b primitive.ObjectID) (*models.ConnectionRequest, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"from_user_id": a, "to_user_id": b},
			{"from_user_id": b, "to_user_id": a},
		},
	}

	var req models.ConnectionRequest
	err := r.collection.FindOne(ctx, filter).Decode(&req)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up request between users: %v", err)
	}
	return &req, nil
}

// FindPendingForReview returns the request only when it is addressed to
// reviewerID and still in the interested state.
func (r *ConnectionRepository) FindPendingForReview(ctx context.Context, id, reviewerID primitive.ObjectID) (*models.ConnectionRequest, error) {
	filter := bson.M{
		"_id":        id,
		"to_user_id": reviewerID,
		"status":     models.StatusInterested,
	}

	var req models.ConnectionRequest
	err := r.collection.FindOne(ctx, filter).Decode(&req)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("connection request %s: %w", id.Hex(), models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find connection request: %v", err)
	}
	return &req, nil
}

// UpdateStatus transitions a request and returns the updated document.
func (r *ConnectionRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.ConnectionRequest, error) {
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var req models.ConnectionRequest
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&req)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("connection request %s: %w", id.Hex(), models.ErrNotFound)
		}
		logrus.WithError(err).Error("Failed to update request status")
		return nil, fmt.Errorf("failed to update request status: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"requestID": id.Hex(),
		"status":    status,
	}).Info("Connection request status updated")
	return &req, nil
}

// GetReceivedRequests returns the pending requests addressed to a user.
func (r *ConnectionRepository) GetReceivedRequests(ctx context.Context, toUserID primitive.ObjectID) ([]models.ConnectionRequest, error) {
	filter := bson.M{"to_user_id": toUserID, "status": models.StatusInterested}
	return r.findRequests(ctx, filter)
}

// GetAcceptedForUser returns the accepted requests involving a user as
// either party.
func (r *ConnectionRepository) GetAcceptedForUser(ctx context.Context, userID primitive.ObjectID) ([]models.ConnectionRequest, error) {
	filter := bson.M{
		"status": models.StatusAccepted,
		"$or": []bson.M{
			{"from_user_id": userID},
			{"to_user_id": userID},
		},
	}
	return r.findRequests(ctx, filter)
}

// GetAllForUser returns every request involving a user, regardless of
// status. The feed uses this to build its exclusion set.
func (r *ConnectionRepository) GetAllForUser(ctx context.Context, userID primitive.ObjectID) ([]models.ConnectionRequest, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"from_user_id": userID},
			{"to_user_id": userID},
		},
	}
	return r.findRequests(ctx, filter)
}

func (r *ConnectionRepository) findRequests(ctx context.Context, filter bson.M) ([]models.ConnectionRequest, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find connection requests: %v", err)
	}
	defer cursor.Close(ctx)

	var requests []models.ConnectionRequest
	for cursor.Next(ctx) {
		var req models.ConnectionRequest
		if err := cursor.Decode(&req); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, nil
}
