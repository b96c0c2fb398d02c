package post

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"socialbook/internal/dbmysql"
)

type PostRepository interface {
	Create(ctx context.Context, post *dbmysql.Post) error
	Save(ctx context.Context, post *dbmysql.Post) error
	GetByPK(ctx context.Context, postPK string) (*dbmysql.Post, error)
	Delete(ctx context.Context, postPK string) error
	// Newsfeed returns the posts visible on userID's feed: their own plus
	// those owned by actively-friended parties the user follows, most
	// recently modified first.
	Newsfeed(ctx context.Context, userID string) ([]dbmysql.Post, error)
	// Timeline returns every post owned by userID.
	Timeline(ctx context.Context, userID string) ([]dbmysql.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *dbmysql.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) Save(ctx context.Context, post *dbmysql.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *postRepository) GetByPK(ctx context.Context, postPK string) (*dbmysql.Post, error) {
	var post dbmysql.Post
	err := r.db.WithContext(ctx).Where("post_pk = ?", postPK).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Delete(ctx context.Context, postPK string) error {
	return r.db.WithContext(ctx).Delete(&dbmysql.Post{}, "post_pk = ?", postPK).Error
}

// Feed inclusion wants the viewer's own flag toward the other party, which
// side of the row that flag sits on depends on who applied. Hence the
// two-branch union over the relation table plus the viewer themself.
func (r *postRepository) Newsfeed(ctx context.Context, userID string) ([]dbmysql.Post, error) {
	var posts []dbmysql.Post
	err := r.db.WithContext(ctx).Raw(`
		SELECT post.*
		  FROM t_post post
		 WHERE post.owner_id IN (
		       SELECT acceptor_id
		         FROM t_frnd
		        WHERE status = 'active'
		          AND applicant_follows = TRUE
		          AND applicant_id = @uid
		       UNION ALL
		       SELECT applicant_id
		         FROM t_frnd
		        WHERE status = 'active'
		          AND acceptor_follows = TRUE
		          AND acceptor_id = @uid
		       UNION ALL
		       SELECT user_id
		         FROM t_user
		        WHERE user_id = @uid
		       )
		 ORDER BY post.updated_at DESC`,
		map[string]interface{}{"uid": userID}).
		Scan(&posts).Error
	return posts, err
}

func (r *postRepository) Timeline(ctx context.Context, userID string) ([]dbmysql.Post, error) {
	var posts []dbmysql.Post
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", userID).
		Find(&posts).Error
	return posts, err
}
