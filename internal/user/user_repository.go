package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"socialbook/internal/dbmysql"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *dbmysql.User) error
	GetUserByID(ctx context.Context, userID string) (*dbmysql.User, error)
	ListUsers(ctx context.Context) ([]*dbmysql.User, error)
	// CountExisting returns how many of the supplied ids resolve to a
	// registered user. Callers compare the count against len(ids).
	CountExisting(ctx context.Context, userIDs ...string) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *dbmysql.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ListUsers(ctx context.Context) ([]*dbmysql.User, error) {
	var users []*dbmysql.User
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&users).Error
	return users, err
}

func (r *userRepository) CountExisting(ctx context.Context, userIDs ...string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.User{}).
		Where("user_id IN ?", userIDs).
		Count(&count).Error
	return count, err
}
