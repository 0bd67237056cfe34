package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gender values accepted on signup and profile edit.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOthers = "Others"
)

// Defaults applied when a user signs up without a photo or an about text.
const (
	DefaultPhotoURL = "https://t4.ftcdn.net/jpg/06/59/57/65/360_F_659576586_9CSUewJar5TZDkEMJu3qHVaPJmywlDn1.jpg"
	DefaultAbout    = "This is default about user"
)

// User represents a registered developer account.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName      string             `bson:"first_name" json:"firstName"`
	LastName       string             `bson:"last_name" json:"lastName"`
	EmailID        string             `bson:"email_id" json:"emailId"`
	HashedPassword string             `bson:"hashed_password" json:"-"`
	Age            int                `bson:"age,omitempty" json:"age,omitempty"`
	Gender         string             `bson:"gender,omitempty" json:"gender,omitempty"`
	PhotoURL       string             `bson:"photo_url" json:"photoUrl"`
	About          string             `bson:"about" json:"about"`
	Skills         []string           `bson:"skills,omitempty" json:"skills,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updatedAt"`
}

// SafeUser is the subset of a user record exposed to other users. It never
// carries the email or the password hash.
type SafeUser struct {
	ID        primitive.ObjectID `json:"id"`
	FirstName string             `json:"firstName"`
	LastName  string             `json:"lastName"`
	PhotoURL  string             `json:"photoUrl"`
	Gender    string             `json:"gender,omitempty"`
	About     string             `json:"about"`
	Skills    []string           `json:"skills,omitempty"`
	Age       int                `json:"age,omitempty"`
}

// Safe projects the user onto its peer-facing fields.
func (u *User) Safe() SafeUser {
	return SafeUser{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		PhotoURL:  u.PhotoURL,
		Gender:    u.Gender,
		About:     u.About,
		Skills:    u.Skills,
		Age:       u.Age,
	}
}
