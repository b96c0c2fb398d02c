package friend

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"socialbook/internal/dbmysql"
)

// FriendRepository persists Friend rows keyed by the ordered
// (applicant, acceptor) pair. Lookups that find nothing return (nil, nil);
// the services decide which absence is a rejection.
type FriendRepository interface {
	Create(ctx context.Context, friend *dbmysql.Friend) error
	Save(ctx context.Context, friend *dbmysql.Friend) error
	// GetByPair finds the row for the exact ordered pair, any status.
	GetByPair(ctx context.Context, applicantID, acceptorID string) (*dbmysql.Friend, error)
	// GetPending finds a pending row for the exact ordered pair. A reversed
	// or already-active pair does not match.
	GetPending(ctx context.Context, applicantID, acceptorID string) (*dbmysql.Friend, error)
	// GetActive finds an active row for the pair in either direction.
	GetActive(ctx context.Context, userID, otherID string) (*dbmysql.Friend, error)
	// ExistsRelation reports whether any row exists for the pair in either
	// direction, regardless of status.
	ExistsRelation(ctx context.Context, userID, otherID string) (bool, error)
}

type friendRepository struct {
	db *gorm.DB
}

func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) Create(ctx context.Context, friend *dbmysql.Friend) error {
	return r.db.WithContext(ctx).Create(friend).Error
}

func (r *friendRepository) Save(ctx context.Context, friend *dbmysql.Friend) error {
	return r.db.WithContext(ctx).Save(friend).Error
}

func (r *friendRepository) GetByPair(ctx context.Context, applicantID, acceptorID string) (*dbmysql.Friend, error) {
	var friend dbmysql.Friend
	err := r.db.WithContext(ctx).
		Where("applicant_id = ? AND acceptor_id = ?", applicantID, acceptorID).
		First(&friend).Error
	return firstOrNil(&friend, err)
}

func (r *friendRepository) GetPending(ctx context.Context, applicantID, acceptorID string) (*dbmysql.Friend, error) {
	var friend dbmysql.Friend
	err := r.db.WithContext(ctx).
		Where("applicant_id = ? AND acceptor_id = ? AND status = ?",
			applicantID, acceptorID, dbmysql.StatusPending).
		First(&friend).Error
	return firstOrNil(&friend, err)
}

func (r *friendRepository) GetActive(ctx context.Context, userID, otherID string) (*dbmysql.Friend, error) {
	var friend dbmysql.Friend
	err := r.db.WithContext(ctx).
		Where("(applicant_id = ? AND acceptor_id = ?) OR (applicant_id = ? AND acceptor_id = ?)",
			userID, otherID, otherID, userID).
		Where("status = ?", dbmysql.StatusActive).
		First(&friend).Error
	return firstOrNil(&friend, err)
}

func (r *friendRepository) ExistsRelation(ctx context.Context, userID, otherID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Friend{}).
		Where("(applicant_id = ? AND acceptor_id = ?) OR (applicant_id = ? AND acceptor_id = ?)",
			userID, otherID, otherID, userID).
		Count(&count).Error
	return count > 0, err
}

func firstOrNil(friend *dbmysql.Friend, err error) (*dbmysql.Friend, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return friend, nil
}
