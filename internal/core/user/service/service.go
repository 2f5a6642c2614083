package userapp

import (
	"context"
	"errors"
	"fmt"

	"photofeed/internal/core/integrity"
	userEntity "photofeed/internal/core/user"
	cachePort "photofeed/internal/ports/cache"
	userPort "photofeed/internal/ports/user"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserService manages users and hands out their serialized shape only.
type UserService struct {
	UserRepository userPort.UserRepository
	Cache          cachePort.SerializedCache // optional
	HashCost       int
	logger         *zap.Logger
}

func NewUserService(repo userPort.UserRepository, cache cachePort.SerializedCache, logger *zap.Logger) *UserService {
	return &UserService{
		UserRepository: repo,
		Cache:          cache,
		HashCost:       bcrypt.DefaultCost,
		logger:         logger,
	}
}

// UserUpdate holds the fields to change; nil fields are left untouched.
type UserUpdate struct {
	Username  *string
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
	IsActive  *bool
}

// hashPassword turns the plaintext into the opaque credential stored in the
// password column.
func (s *UserService) hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.HashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", &integrity.ValidationError{Entity: userEntity.Entity, Field: "password", Rule: "max", Param: "72"}
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// CreateUser inserts a user. Username and email must be unused.
func (s *UserService) CreateUser(ctx context.Context, username, firstName, lastName, email, password string, isActive bool) (*userEntity.Serialized, error) {
	user, err := userEntity.New(username, firstName, lastName, email, password, isActive)
	if err != nil {
		return nil, err
	}

	if user.Password, err = s.hashPassword(password); err != nil {
		return nil, err
	}

	u, err := s.UserRepository.Create(ctx, user)
	if err != nil {
		s.logger.Warn("could not create user", zap.String("username", username), zap.Error(err))
		return nil, err
	}

	s.logger.Info("user created", zap.Uint("id", u.ID), zap.String("username", u.Username))
	out := u.Serialize()
	return &out, nil
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*userEntity.Serialized, error) {
	out, err := cachePort.Fetch(ctx, s.Cache, s.logger, cachePort.Key(userEntity.Entity, id), func() (userEntity.Serialized, error) {
		u, err := s.UserRepository.FindByID(ctx, id)
		if err != nil {
			return userEntity.Serialized{}, err
		}
		return u.Serialize(), nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*userEntity.Serialized, error) {
	u, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	out := u.Serialize()
	return &out, nil
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*userEntity.Serialized, error) {
	u, err := s.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	out := u.Serialize()
	return &out, nil
}

// UpdateUser applies upd and re-checks every column constraint.
func (s *UserService) UpdateUser(ctx context.Context, id uint, upd UserUpdate) (*userEntity.Serialized, error) {
	u, err := s.UserRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Username != nil {
		u.Username = *upd.Username
	}
	if upd.FirstName != nil {
		u.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		u.LastName = *upd.LastName
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.IsActive != nil {
		u.IsActive = *upd.IsActive
	}
	if upd.Password != nil {
		if *upd.Password == "" {
			return nil, &integrity.ValidationError{Entity: userEntity.Entity, Field: "password", Rule: "required"}
		}
		if u.Password, err = s.hashPassword(*upd.Password); err != nil {
			return nil, err
		}
	}

	updated, err := s.UserRepository.Update(ctx, u)
	if err != nil {
		s.logger.Warn("could not update user", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	cachePort.Invalidate(ctx, s.Cache, s.logger, cachePort.Key(userEntity.Entity, id))

	s.logger.Info("user updated", zap.Uint("id", id))
	out := updated.Serialize()
	return &out, nil
}

// DeleteUser fails with a foreign key violation while the user still has
// posts, comments or follow edges.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.UserRepository.Delete(ctx, id); err != nil {
		s.logger.Warn("could not delete user", zap.Uint("id", id), zap.Error(err))
		return err
	}
	cachePort.Invalidate(ctx, s.Cache, s.logger, cachePort.Key(userEntity.Entity, id))
	s.logger.Info("user deleted", zap.Uint("id", id))
	return nil
}
