package user

import (
	"context"
	"fmt"
	"time"

	"socialbook/internal/common"
	"socialbook/internal/dbmysql"
)

type UserService interface {
	Register(ctx context.Context, userID, userName string) (*dbmysql.User, string, error)
	ListUsers(ctx context.Context) ([]*dbmysql.User, error)
}

type userService struct {
	userRepo UserRepository
}

func NewUserService(userRepo UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Register creates a user from an id and a display name and returns the
// stored record with a signed access token. The id is available only if no
// user already holds it.
func (s *userService) Register(ctx context.Context, userID, userName string) (*dbmysql.User, string, error) {
	if !common.ValidUserID(userID) {
		return nil, "", common.ErrMalformedIdentifier
	}
	if !common.ValidUserName(userName) {
		return nil, "", common.ErrMalformedDisplayName
	}

	existing, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf("lookup user %s: %w", userID, err)
	}
	if existing != nil {
		return nil, "", common.ErrDuplicateUser
	}

	now := time.Now()
	user := &dbmysql.User{
		UserID:     userID,
		UserName:   userName,
		CreatorID:  userID,
		ModifierID: userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user %s: %w", userID, err)
	}

	token, err := common.GenerateToken(user.UserID)
	if err != nil {
		return nil, "", fmt.Errorf("sign token for %s: %w", userID, err)
	}

	return user, token, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]*dbmysql.User, error) {
	return s.userRepo.ListUsers(ctx)
}
