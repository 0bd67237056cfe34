package services

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/rajwantprajapati/devTinder/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserStore is the persistence surface the user service depends on. The
// Mongo UserRepository satisfies it; tests use an in-memory fake.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetUsersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	GetFeedPage(ctx context.Context, excludeIDs []primitive.ObjectID, skip, limit int64) ([]models.User, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) (*models.User, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) error
}

// MailSender delivers a plain-text email. A nil sender disables mail.
type MailSender func(to, subject, body string) error

// SignupRequest carries the signup payload.
type SignupRequest struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	EmailID   string   `json:"emailId"`
	Password  string   `json:"password"`
	Age       int      `json:"age,omitempty"`
	Gender    string   `json:"gender,omitempty"`
	PhotoURL  string   `json:"photoUrl,omitempty"`
	About     string   `json:"about,omitempty"`
	Skills    []string `json:"skills,omitempty"`
}

// ProfileUpdate carries the allow-listed editable profile fields. Any
// other key in the request body is rejected at decode time.
type ProfileUpdate struct {
	FirstName *string   `json:"firstName,omitempty"`
	LastName  *string   `json:"lastName,omitempty"`
	Age       *int      `json:"age,omitempty"`
	Gender    *string   `json:"gender,omitempty"`
	PhotoURL  *string   `json:"photoUrl,omitempty"`
	About     *string   `json:"about,omitempty"`
	Skills    *[]string `json:"skills,omitempty"`
}

// UserService encapsulates the business logic for user accounts.
type UserService struct {
	repo   UserStore
	mailer MailSender
}

// NewUserService creates a new instance of UserService. mailer may be nil.
func NewUserService(repo UserStore, mailer MailSender) *UserService {
	return &UserService{
		repo:   repo,
		mailer: mailer,
	}
}

// RegisterUser validates a signup payload, hashes the password and creates
// the account.
func (s *UserService) RegisterUser(ctx context.Context, req *SignupRequest) (*models.User, error) {
	if err := validateSignup(req); err != nil {
		logrus.WithError(err).Warn("Signup validation failed")
		return nil, err
	}

	// Pre-check for a friendly message; the unique index on email_id is
	// what actually enforces uniqueness under concurrency.
	if existing, _ := s.repo.GetUserByEmail(ctx, req.EmailID); existing != nil {
		logrus.WithField("email", req.EmailID).Warn("Email already in use")
		return nil, fmt.Errorf("email already in use: %w", models.ErrDuplicate)
	}

	hashedPwd, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Error("Password hashing failed")
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}

	user := &models.User{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		EmailID:        req.EmailID,
		HashedPassword: string(hashedPwd),
		Age:            req.Age,
		Gender:         req.Gender,
		PhotoURL:       req.PhotoURL,
		About:          req.About,
		Skills:         req.Skills,
	}
	if user.PhotoURL == "" {
		user.PhotoURL = models.DefaultPhotoURL
	}
	if user.About == "" {
		user.About = models.DefaultAbout
	}

	createdUser, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		logrus.WithError(err).Error("User registration failed")
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	if s.mailer != nil {
		body := fmt.Sprintf("Hi %s,\n\nWelcome aboard! Complete your profile and start connecting with other developers.", createdUser.FirstName)
		if err := s.mailer(createdUser.EmailID, "Welcome!", body); err != nil {
			logrus.WithError(err).Warn("Failed to send welcome email")
		}
	}

	logrus.WithField("userID", createdUser.ID.Hex()).Info("User registered successfully")
	return createdUser, nil
}

func validateSignup(req *SignupRequest) error {
	if req.FirstName == "" || req.LastName == "" {
		return validationError("name is not valid")
	}
	if !validEmail(req.EmailID) {
		return validationError("email id is not valid")
	}
	if !strongPassword(req.Password) {
		return validationError("password should have min 8 characters, at least 1 lowercase, 1 uppercase, 1 number and 1 special character")
	}
	if req.Age != 0 && req.Age < 18 {
		return validationError("age should be at least 18")
	}
	if req.Gender != "" && !validGender(req.Gender) {
		return validationError("%q is not a valid gender", req.Gender)
	}
	if req.PhotoURL != "" && !validPhotoURL(req.PhotoURL) {
		return validationError("photo URL is not valid")
	}
	if len(req.Skills) > maxSkills {
		return validationError("max %d skills allowed", maxSkills)
	}
	return nil
}

// AuthenticateUser verifies the email and password and returns the user if
// the credentials are valid. Unknown email and wrong password are
// deliberately indistinguishable.
func (s *UserService) AuthenticateUser(ctx context.Context, email, password string) (*models.User, error) {
	if !validEmail(email) {
		return nil, validationError("please enter a valid email id")
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		logrus.WithField("email", email).Warn("Sign in attempt for unknown email")
		return nil, fmt.Errorf("invalid credentials: %w", models.ErrUnauthenticated)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		logrus.WithField("email", email).Warn("Invalid credentials")
		return nil, fmt.Errorf("invalid credentials: %w", models.ErrUnauthenticated)
	}

	logrus.WithField("userID", user.ID.Hex()).Info("User authenticated successfully")
	return user, nil
}

// GetUser retrieves a user by their ID.
func (s *UserService) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetUserByEmail retrieves a user by their email address.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if !validEmail(email) {
		return nil, validationError("email id is not valid")
	}
	return s.repo.GetUserByEmail(ctx, email)
}

// UpdateProfile applies an allow-listed partial update to the logged-in
// user's profile.
func (s *UserService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, upd *ProfileUpdate) (*models.User, error) {
	update := map[string]interface{}{}

	if upd.FirstName != nil {
		if *upd.FirstName == "" {
			return nil, validationError("first name cannot be empty")
		}
		update["first_name"] = *upd.FirstName
	}
	if upd.LastName != nil {
		if *upd.LastName == "" {
			return nil, validationError("last name cannot be empty")
		}
		update["last_name"] = *upd.LastName
	}
	if upd.Age != nil {
		if *upd.Age < 18 {
			return nil, validationError("age should be at least 18")
		}
		update["age"] = *upd.Age
	}
	if upd.Gender != nil {
		if !validGender(*upd.Gender) {
			return nil, validationError("%q is not a valid gender", *upd.Gender)
		}
		update["gender"] = *upd.Gender
	}
	if upd.PhotoURL != nil {
		if !validPhotoURL(*upd.PhotoURL) {
			return nil, validationError("photo URL is not valid")
		}
		update["photo_url"] = *upd.PhotoURL
	}
	if upd.About != nil {
		update["about"] = *upd.About
	}
	if upd.Skills != nil {
		if len(*upd.Skills) > maxSkills {
			return nil, validationError("max %d skills allowed", maxSkills)
		}
		update["skills"] = *upd.Skills
	}

	if len(update) == 0 {
		return nil, validationError("no editable fields in request")
	}

	user, err := s.repo.UpdateUser(ctx, userID, update)
	if err != nil {
		logrus.WithError(err).Error("Failed to update profile")
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	logrus.WithField("userID", userID.Hex()).Info("Profile updated successfully")
	return user, nil
}

// UpdatePassword verifies the old password and replaces it with a new one.
func (s *UserService) UpdatePassword(ctx context.Context, user *models.User, oldPassword, newPassword string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(oldPassword)); err != nil {
		logrus.WithField("userID", user.ID.Hex()).Warn("Password update with incorrect old password")
		return validationError("incorrect old password")
	}

	if !strongPassword(newPassword) {
		return validationError("new password should have min 8 characters, at least 1 lowercase, 1 uppercase, 1 number and 1 special character")
	}

	hashedPwd, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %v", err)
	}

	if _, err := s.repo.UpdateUser(ctx, user.ID, map[string]interface{}{"hashed_password": string(hashedPwd)}); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	logrus.WithField("userID", user.ID.Hex()).Info("Password updated successfully")
	return nil
}

// DeleteUser removes a user account.
func (s *UserService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
