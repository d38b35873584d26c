package services

import (
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

// UserStore is the persistence surface UserService needs. *database.UserRepo
// satisfies it in production.
type UserStore interface {
	FindByID(id uuid.UUID) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	ExistsByUsername(username string) (bool, error)
	ExistsByEmail(email string) (bool, error)
	Update(user *models.User) error
}

// UserUpdate carries a partial profile update; nil fields are left untouched
type UserUpdate struct {
	FullName    *string
	Bio         *string
	Email       *string
	AvatarURL   *string
	GithubURL   *string
	LinkedinURL *string
}

// UserService orchestrates the single owner account
type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// GetByID returns a user by id
func (s *UserService) GetByID(id uuid.UUID) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NewNotFound("user")
	}
	return user, nil
}

// GetByUsername returns a user by username
func (s *UserService) GetByUsername(username string) (*models.User, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NewNotFound("user")
	}
	return user, nil
}

// UpdateProfile applies a partial profile update. An email change to an address
// already in use is a Conflict.
func (s *UserService) UpdateProfile(id uuid.UUID, in UserUpdate) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NewNotFound("user")
	}

	if in.FullName != nil {
		user.FullName = in.FullName
	}
	if in.Bio != nil {
		user.Bio = in.Bio
	}
	if in.Email != nil && *in.Email != user.Email {
		exists, err := s.users.ExistsByEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, errs.NewAlreadyExists("email")
		}
		user.Email = *in.Email
	}
	if in.AvatarURL != nil {
		user.AvatarURL = in.AvatarURL
	}
	if in.GithubURL != nil {
		user.GithubURL = in.GithubURL
	}
	if in.LinkedinURL != nil {
		user.LinkedinURL = in.LinkedinURL
	}

	if err := s.users.Update(user); err != nil {
		return nil, errs.NewDatabaseError("update", "user", err)
	}
	return user, nil
}

// Authenticate checks credentials. A missing user and a wrong password collapse
// into the same generic error so the response cannot be used for username
// enumeration.
// TODO: replace the plaintext comparison with bcrypt before any signup flow ships.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password != password {
		return nil, errs.Unauthorized
	}
	return user, nil
}

// UsernameExists reports whether a username is taken
func (s *UserService) UsernameExists(username string) (bool, error) {
	return s.users.ExistsByUsername(username)
}

// EmailExists reports whether an email is taken
func (s *UserService) EmailExists(email string) (bool, error) {
	return s.users.ExistsByEmail(email)
}
