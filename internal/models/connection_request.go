package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Connection request statuses. A request is created as either "interested"
// or "ignored"; only an "interested" request can be reviewed by its
// recipient, into "accepted" or "rejected". Every other state is terminal.
const (
	StatusInterested = "interested"
	StatusIgnored    = "ignored"
	StatusAccepted   = "accepted"
	StatusRejected   = "rejected"
)

// ConnectionRequest is a directed proposal from one user to another.
type ConnectionRequest struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FromUserID primitive.ObjectID `bson:"from_user_id" json:"fromUserId"`
	ToUserID   primitive.ObjectID `bson:"to_user_id" json:"toUserId"`
	Status     string             `bson:"status" json:"status"`
	PairKey    string             `bson:"pair_key" json:"-"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updatedAt"`
}

// PairKey canonicalizes an unordered user pair into a single string so a
// unique index can forbid a second request between the two users in either
// direction.
func PairKey(a, b primitive.ObjectID) string {
	ah, bh := a.Hex(), b.Hex()
	if strings.Compare(ah, bh) > 0 {
		ah, bh = bh, ah
	}
	return ah + "_" + bh
}

// Counterpart returns the other party of the request relative to userID.
func (r *ConnectionRequest) Counterpart(userID primitive.ObjectID) primitive.ObjectID {
	if r.FromUserID == userID {
		return r.ToUserID
	}
	return r.FromUserID
}
