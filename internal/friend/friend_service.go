package friend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"socialbook/internal/common"
	"socialbook/internal/dbmysql"
	"socialbook/internal/user"
)

const friendKeyPrefix = "frnd"

// applyUserCount: an apply touches exactly two accounts, and both must
// still exist at apply time.
const applyUserCount = 2

// FollowRole names the party whose follow flag a Follow/Unfollow call
// toggles. Only the two declared values are valid.
type FollowRole int

const (
	ApplicantRole FollowRole = iota + 1
	AcceptorRole
)

// ParseFollowRole maps the wire tokens onto a role. Anything else is the
// parameter-abuse case and is rejected before any store lookup.
func ParseFollowRole(token string) (FollowRole, error) {
	switch token {
	case "applicantId":
		return ApplicantRole, nil
	case "acceptorId":
		return AcceptorRole, nil
	default:
		return 0, common.ErrInvalidFollowRole
	}
}

func (role FollowRole) valid() bool {
	return role == ApplicantRole || role == AcceptorRole
}

// FriendService owns the relationship lifecycle:
//
//	none -> pending (Apply) -> active (Accept) -> terminated (Terminate)
//
// plus the per-direction follow toggles, which are only legal while the
// relation is active.
type FriendService interface {
	Apply(ctx context.Context, applicantID, acceptorID string) (*dbmysql.Friend, error)
	Accept(ctx context.Context, applicantID, acceptorID string) (*dbmysql.Friend, error)
	Terminate(ctx context.Context, applicantID, acceptorID string) (*dbmysql.Friend, error)
	Follow(ctx context.Context, applicantID, acceptorID string, role FollowRole) (*dbmysql.Friend, error)
	Unfollow(ctx context.Context, applicantID, acceptorID string, role FollowRole) (*dbmysql.Friend, error)
}

type friendService struct {
	userRepo   user.UserRepository
	friendRepo FriendRepository
}

func NewFriendService(userRepo user.UserRepository, friendRepo FriendRepository) FriendService {
	return &friendService{userRepo: userRepo, friendRepo: friendRepo}
}

// Apply creates a pending relation. Both ids must be well formed, both
// accounts must exist, and no row may exist for the pair in either
// direction. A concurrent duplicate insert loses on the unique pair index
// and surfaces as the same duplicate rejection.
func (s *friendService) Apply(ctx context.Context, applicantID, acceptorID string) (*dbmysql.Friend, error) {
	if !common.ValidUserIDs(applicantID, acceptorID) {
		return nil, common.ErrMalformedIdentifier
	}

	count, err := s.userRepo.CountExisting(ctx, applicantID, acceptorID)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if count != applyUserCount {
		return nil, common.ErrUnknownUser
	}

	exists, err := s.friendRepo.ExistsRelation(ctx, applicantID, acceptorID)
	if err != nil {
		return nil, fmt.Errorf("check relation: %w", err)
	}
	if exists {
		return nil, common.ErrDuplicateRelationship
	}

	now := time.Now()
	friend := &dbmysql.Friend{
		FriendPK:         common.GenerateKey(friendKeyPrefix),
		ApplicantID:      applicantID,
		AcceptorID:       acceptorID,
		Status:           dbmysql.StatusPending,
		ApplicantFollows: false,
		AcceptorFollows:  false,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.friendRepo.Create(ctx, friend); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, common.ErrDuplicateRelationship
		}
		return nil, fmt.Errorf("create relation: %w", err)
	}

	return friend, nil
}

// Accept activates a pending relation and turns both follow flags on in the
// same save. Only the exact ordered pair that applied can be accepted.
func (s *friendService) Accept(ctx context.Context, applicantID, acceptorID string) (*dbmysql.Friend, error) {
	if !common.ValidUserIDs(applicantID, acceptorID) {
		return nil, common.ErrMalformedIdentifier
	}

	friend, err := s.friendRepo.GetPending(ctx, applicantID, acceptorID)
	if err != nil {
		return nil, fmt.Errorf("find pending relation: %w", err)
	}
	if friend == nil {
		return nil, common.ErrNoPendingRelationship
	}

	friend.Status = dbmysql.StatusActive
	friend.ApplicantFollows = true
	friend.AcceptorFollows = true
	friend.UpdatedAt = time.Now()

	if err := s.friendRepo.Save(ctx, friend); err != nil {
		return nil, fmt.Errorf("save relation: %w", err)
	}
	return friend, nil
}

// Terminate ends an active relation and clears both follow flags in the
// same save. Either party may terminate, so the lookup ignores direction.
func (s *friendService) Terminate(ctx context.Context, applicantID, acceptorID string) (*dbmysql.Friend, error) {
	if !common.ValidUserIDs(applicantID, acceptorID) {
		return nil, common.ErrMalformedIdentifier
	}

	friend, err := s.friendRepo.GetActive(ctx, applicantID, acceptorID)
	if err != nil {
		return nil, fmt.Errorf("find active relation: %w", err)
	}
	if friend == nil {
		return nil, common.ErrNoActiveRelationship
	}

	friend.Status = dbmysql.StatusTerminated
	friend.ApplicantFollows = false
	friend.AcceptorFollows = false
	friend.UpdatedAt = time.Now()

	if err := s.friendRepo.Save(ctx, friend); err != nil {
		return nil, fmt.Errorf("save relation: %w", err)
	}
	return friend, nil
}

// Follow turns one direction's flag on. Re-following is a rejection, not a
// no-op: the flag must currently be false.
func (s *friendService) Follow(ctx context.Context, applicantID, acceptorID string, role FollowRole) (*dbmysql.Friend, error) {
	return s.setFollow(ctx, applicantID, acceptorID, role, true)
}

// Unfollow turns one direction's flag off; the flag must currently be true.
func (s *friendService) Unfollow(ctx context.Context, applicantID, acceptorID string, role FollowRole) (*dbmysql.Friend, error) {
	return s.setFollow(ctx, applicantID, acceptorID, role, false)
}

func (s *friendService) setFollow(ctx context.Context, applicantID, acceptorID string, role FollowRole, follow bool) (*dbmysql.Friend, error) {
	if !role.valid() {
		return nil, common.ErrInvalidFollowRole
	}
	if !common.ValidUserIDs(applicantID, acceptorID) {
		return nil, common.ErrMalformedIdentifier
	}

	// The roles are oriented by the row, so the lookup is the exact ordered
	// pair; a reversed pair does not identify the flag being toggled.
	friend, err := s.friendRepo.GetByPair(ctx, applicantID, acceptorID)
	if err != nil {
		return nil, fmt.Errorf("find relation: %w", err)
	}
	if friend == nil || friend.Status != dbmysql.StatusActive {
		return nil, common.ErrNoActiveRelationship
	}

	switch role {
	case ApplicantRole:
		if friend.ApplicantFollows == follow {
			return nil, common.ErrRedundantFollowState
		}
		friend.ApplicantFollows = follow
	case AcceptorRole:
		if friend.AcceptorFollows == follow {
			return nil, common.ErrRedundantFollowState
		}
		friend.AcceptorFollows = follow
	}
	friend.UpdatedAt = time.Now()

	if err := s.friendRepo.Save(ctx, friend); err != nil {
		return nil, fmt.Errorf("save relation: %w", err)
	}
	return friend, nil
}
