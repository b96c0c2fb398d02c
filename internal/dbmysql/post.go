package dbmysql

import (
	"time"
)

// Post lives on the owner's timeline. CreatorID is the author (owner or an
// active friend of the owner at write time); ModifierID tracks the last
// editor. A later friendship termination does not touch stored rows.
type Post struct {
	PostPK     string    `gorm:"primaryKey;column:post_pk;size:45" json:"postPk"`
	OwnerID    string    `gorm:"column:owner_id;size:45;not null;index" json:"ownerId"`
	Content    string    `gorm:"column:content;size:500;not null" json:"content"`
	CreatorID  string    `gorm:"column:creator_id;size:45;not null" json:"creatorId"`
	ModifierID string    `gorm:"column:modifier_id;size:45" json:"modifierId"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Post) TableName() string {
	return "t_post"
}
