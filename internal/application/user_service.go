package application

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/product-market-api/internal/domain/entity"
	"github.com/oksasatya/product-market-api/internal/domain/repository"
	"github.com/oksasatya/product-market-api/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email is already in use")
)

// UserService implements registration, login and self-service user operations.
type UserService struct {
	Repo   repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewUserService(repo repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, JWT: jwt, Logger: logger}
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Register creates a user with a hashed password and issues a bearer token
// for the fresh account. Duplicate emails fail before anything is written.
func (s *UserService) Register(in RegisterInput) (*entity.User, string, error) {
	if existing, err := s.Repo.GetByEmail(in.Email); err == nil && existing != nil {
		return nil, "", ErrEmailTaken
	} else if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, "", err
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	u := &entity.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
	}
	if err := s.Repo.Create(u); err != nil {
		// Concurrent register with the same email loses the insert race.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, err := s.JWT.Generate(u.Email, u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return nil, "", err
	}
	return u, token, nil
}

// Login verifies credentials and issues a token carrying subject=email and
// the numeric user id.
func (s *UserService) Login(email, password string) (*entity.User, string, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.JWT.Generate(u.Email, u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return nil, "", err
	}
	return u, token, nil
}

// GetByEmail loads the caller's own record from the token subject.
func (s *UserService) GetByEmail(email string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

type UpdateProfileInput struct {
	FirstName string
	LastName  string
}

// UpdateProfile mutates name fields only. The password is immutable through
// this path and the email stays the token subject.
func (s *UserService) UpdateProfile(email string, in UpdateProfileInput) (*entity.User, error) {
	u, err := s.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if in.FirstName != "" {
		u.FirstName = in.FirstName
	}
	if in.LastName != "" {
		u.LastName = in.LastName
	}
	if err := s.Repo.Update(u); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// Delete removes the caller's own record; owned products go with it.
func (s *UserService) Delete(email string) error {
	u, err := s.GetByEmail(email)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(u.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *UserService) ListUsers() ([]entity.User, error) {
	return s.Repo.List()
}
