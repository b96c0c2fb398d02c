package post

import (
	"context"
	"fmt"
	"time"

	"socialbook/internal/common"
	"socialbook/internal/dbmysql"
	"socialbook/internal/friend"
)

const postKeyPrefix = "post"

// maxContentBytes is a strict upper bound: a 500-byte body is rejected.
const maxContentBytes = 500

// PostService is the content authorization engine plus the operations it
// gates. Relationship state is consulted at operation time, never cached:
// a post written during a friendship survives its termination, but further
// edits by the ex-friend do not.
type PostService interface {
	Write(ctx context.Context, ownerID, creatorID, content string) (*dbmysql.Post, error)
	Modify(ctx context.Context, postPK, modifierID, content string) (*dbmysql.Post, error)
	Delete(ctx context.Context, postPK, requesterID string) error
	Newsfeed(ctx context.Context, userID string) ([]dbmysql.Post, error)
	Timeline(ctx context.Context, userID string) ([]dbmysql.Post, error)
}

type postService struct {
	postRepo   PostRepository
	friendRepo friend.FriendRepository
}

func NewPostService(postRepo PostRepository, friendRepo friend.FriendRepository) PostService {
	return &postService{postRepo: postRepo, friendRepo: friendRepo}
}

// Write creates a post on ownerID's timeline. Writing to yourself is always
// permitted; writing to anyone else requires an active relation between
// owner and creator right now.
func (s *postService) Write(ctx context.Context, ownerID, creatorID, content string) (*dbmysql.Post, error) {
	if !common.ValidUserIDs(ownerID, creatorID) {
		return nil, common.ErrMalformedIdentifier
	}
	if len(content) >= maxContentBytes {
		return nil, common.ErrContentTooLarge
	}
	if ownerID != creatorID {
		if err := s.requireActiveRelation(ctx, ownerID, creatorID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	p := &dbmysql.Post{
		PostPK:     common.GenerateKey(postKeyPrefix),
		OwnerID:    ownerID,
		Content:    content,
		CreatorID:  creatorID,
		ModifierID: creatorID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.postRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return p, nil
}

// Modify edits a stored post. Only the original creator may modify, and the
// authorization runs against the stored row, not against anything the
// request claims. The friendship is re-checked at modify time.
func (s *postService) Modify(ctx context.Context, postPK, modifierID, content string) (*dbmysql.Post, error) {
	if !common.ValidKey(postPK, postKeyPrefix) {
		return nil, common.ErrForgedKey
	}

	p, err := s.postRepo.GetByPK(ctx, postPK)
	if err != nil {
		return nil, fmt.Errorf("find post: %w", err)
	}
	if p == nil {
		return nil, common.ErrContentNotFound
	}

	if modifierID != p.CreatorID {
		return nil, common.ErrUnauthorizedModification
	}
	if !common.ValidUserIDs(p.OwnerID, modifierID) {
		return nil, common.ErrMalformedIdentifier
	}
	if len(content) >= maxContentBytes {
		return nil, common.ErrContentTooLarge
	}
	if p.OwnerID != modifierID {
		if err := s.requireActiveRelation(ctx, p.OwnerID, modifierID); err != nil {
			return nil, err
		}
	}

	p.Content = content
	p.ModifierID = modifierID
	p.UpdatedAt = time.Now()

	if err := s.postRepo.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save post: %w", err)
	}
	return p, nil
}

// Delete removes a stored post. The owner may always delete from their own
// timeline; anyone else needs an active relation with the owner.
func (s *postService) Delete(ctx context.Context, postPK, requesterID string) error {
	if !common.ValidKey(postPK, postKeyPrefix) {
		return common.ErrForgedKey
	}

	p, err := s.postRepo.GetByPK(ctx, postPK)
	if err != nil {
		return fmt.Errorf("find post: %w", err)
	}
	if p == nil {
		return common.ErrContentNotFound
	}

	if !common.ValidUserIDs(p.OwnerID, requesterID) {
		return common.ErrMalformedIdentifier
	}
	if p.OwnerID != requesterID {
		if err := s.requireActiveRelation(ctx, p.OwnerID, requesterID); err != nil {
			return err
		}
	}

	if err := s.postRepo.Delete(ctx, p.PostPK); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

func (s *postService) Newsfeed(ctx context.Context, userID string) ([]dbmysql.Post, error) {
	if !common.ValidUserID(userID) {
		return nil, common.ErrMalformedIdentifier
	}
	return s.postRepo.Newsfeed(ctx, userID)
}

func (s *postService) Timeline(ctx context.Context, userID string) ([]dbmysql.Post, error) {
	if !common.ValidUserID(userID) {
		return nil, common.ErrMalformedIdentifier
	}
	return s.postRepo.Timeline(ctx, userID)
}

func (s *postService) requireActiveRelation(ctx context.Context, ownerID, otherID string) error {
	relation, err := s.friendRepo.GetActive(ctx, ownerID, otherID)
	if err != nil {
		return fmt.Errorf("check relation: %w", err)
	}
	if relation == nil {
		return common.ErrNoActiveRelationship
	}
	return nil
}
