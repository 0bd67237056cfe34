package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/rajwantprajapati/devTinder/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory stores backing the HTTP tests. They mirror the Mongo
// repositories, including the unique indexes on email and pair key.

type memUserStore struct {
	users []*models.User
}

func (s *memUserStore) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	for _, u := range s.users {
		if u.EmailID == user.EmailID {
			return nil, fmt.Errorf("email already in use: %w", models.ErrDuplicate)
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	s.users = append(s.users, user)
	return user, nil
}

func (s *memUserStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.EmailID == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("user with email %s: %w", email, models.ErrNotFound)
}

func (s *memUserStore) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", id.Hex(), models.ErrNotFound)
}

func (s *memUserStore) GetUsersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	wanted := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var result []models.User
	for _, u := range s.users {
		if wanted[u.ID] {
			result = append(result, *u)
		}
	}
	return result, nil
}

func (s *memUserStore) GetFeedPage(ctx context.Context, excludeIDs []primitive.ObjectID, skip, limit int64) ([]models.User, error) {
	excluded := make(map[primitive.ObjectID]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}
	var result []models.User
	var seen int64
	for _, u := range s.users {
		if excluded[u.ID] {
			continue
		}
		if seen < skip {
			seen++
			continue
		}
		if int64(len(result)) >= limit {
			break
		}
		result = append(result, *u)
	}
	return result, nil
}

func (s *memUserStore) UpdateUser(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) (*models.User, error) {
	for _, u := range s.users {
		if u.ID != id {
			continue
		}
		for key, value := range update {
			switch key {
			case "first_name":
				u.FirstName = value.(string)
			case "last_name":
				u.LastName = value.(string)
			case "age":
				u.Age = value.(int)
			case "gender":
				u.Gender = value.(string)
			case "photo_url":
				u.PhotoURL = value.(string)
			case "about":
				u.About = value.(string)
			case "skills":
				u.Skills = value.([]string)
			case "hashed_password":
				u.HashedPassword = value.(string)
			}
		}
		u.UpdatedAt = time.Now()
		copied := *u
		return &copied, nil
	}
	return nil, fmt.Errorf("user %s: %w", id.Hex(), models.ErrNotFound)
}

func (s *memUserStore) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("user %s: %w", id.Hex(), models.ErrNotFound)
}

type memConnectionStore struct {
	requests []*models.ConnectionRequest
}

func (s *memConnectionStore) CreateRequest(ctx context.Context, req *models.ConnectionRequest) (*models.ConnectionRequest, error) {
	pairKey := models.PairKey(req.FromUserID, req.ToUserID)
	for _, existing := range s.requests {
		if existing.PairKey == pairKey {
			return nil, fmt.Errorf("connection request already exists between these users: %w", models.ErrDuplicate)
		}
	}
	req.ID = primitive.NewObjectID()
	req.PairKey = pairKey
	req.CreatedAt = time.Now()
	req.UpdatedAt = req.CreatedAt
	s.requests = append(s.requests, req)
	copied := *req
	return &copied, nil
}

func (s *memConnectionStore) FindBetweenUsers(ctx context.Context, a, b primitive.ObjectID) (*models.ConnectionRequest, error) {
	pairKey := models.PairKey(a, b)
	for _, req := range s.requests {
		if req.PairKey == pairKey {
			copied := *req
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *memConnectionStore) FindPendingForReview(ctx context.Context, id, reviewerID primitive.ObjectID) (*models.ConnectionRequest, error) {
	for _, req := range s.requests {
		if req.ID == id && req.ToUserID == reviewerID && req.Status == models.StatusInterested {
			copied := *req
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("connection request %s: %w", id.Hex(), models.ErrNotFound)
}

func (s *memConnectionStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.ConnectionRequest, error) {
	for _, req := range s.requests {
		if req.ID == id {
			req.Status = status
			req.UpdatedAt = time.Now()
			copied := *req
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("connection request %s: %w", id.Hex(), models.ErrNotFound)
}

func (s *memConnectionStore) GetReceivedRequests(ctx context.Context, toUserID primitive.ObjectID) ([]models.ConnectionRequest, error) {
	var result []models.ConnectionRequest
	for _, req := range s.requests {
		if req.ToUserID == toUserID && req.Status == models.StatusInterested {
			result = append(result, *req)
		}
	}
	return result, nil
}

func (s *memConnectionStore) GetAcceptedForUser(ctx context.Context, userID primitive.ObjectID) ([]models.ConnectionRequest, error) {
	var result []models.ConnectionRequest
	for _, req := range s.requests {
		if req.Status == models.StatusAccepted && (req.FromUserID == userID || req.ToUserID == userID) {
			result = append(result, *req)
		}
	}
	return result, nil
}

func (s *memConnectionStore) GetAllForUser(ctx context.Context, userID primitive.ObjectID) ([]models.ConnectionRequest, error) {
	var result []models.ConnectionRequest
	for _, req := range s.requests {
		if req.FromUserID == userID || req.ToUserID == userID {
			result = append(result, *req)
		}
	}
	return result, nil
}

type memNotificationStore struct {
	notifications []*models.Notification
}

func (s *memNotificationStore) CreateNotification(ctx context.Context, notif *models.Notification) error {
	notif.ID = primitive.NewObjectID()
	notif.CreatedAt = time.Now()
	notif.ExpiresAt = notif.CreatedAt.Add(7 * 24 * time.Hour)
	s.notifications = append(s.notifications, notif)
	return nil
}

func (s *memNotificationStore) GetUserNotifications(ctx context.Context, userID primitive.ObjectID) ([]models.Notification, error) {
	var result []models.Notification
	for _, n := range s.notifications {
		if n.UserID == userID && n.ExpiresAt.After(time.Now()) {
			result = append(result, *n)
		}
	}
	return result, nil
}

func (s *memNotificationStore) GetNotificationByID(ctx context.Context, id primitive.ObjectID) (*models.Notification, error) {
	for _, n := range s.notifications {
		if n.ID == id {
			copied := *n
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("notification %s: %w", id.Hex(), models.ErrNotFound)
}

func (s *memNotificationStore) MarkAsRead(ctx context.Context, id primitive.ObjectID) error {
	for _, n := range s.notifications {
		if n.ID == id {
			n.Read = true
			return nil
		}
	}
	return fmt.Errorf("notification %s: %w", id.Hex(), models.ErrNotFound)
}

func (s *memNotificationStore) DeleteNotification(ctx context.Context, id primitive.ObjectID) error {
	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("notification %s: %w", id.Hex(), models.ErrNotFound)
}

func (s *memNotificationStore) DeleteExpired(ctx context.Context) (int64, error) {
	var kept []*models.Notification
	var deleted int64
	for _, n := range s.notifications {
		if n.ExpiresAt.After(time.Now()) {
			kept = append(kept, n)
		} else {
			deleted++
		}
	}
	s.notifications = kept
	return deleted, nil
}
