package dbmysql

import (
	"time"
)

type User struct {
	UserID     string    `gorm:"primaryKey;column:user_id;size:45" json:"userId"`
	UserName   string    `gorm:"column:user_name;size:45;not null" json:"userName"`
	CreatorID  string    `gorm:"column:creator_id;size:45" json:"creatorId"`
	ModifierID string    `gorm:"column:modifier_id;size:45" json:"modifierId"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (User) TableName() string {
	return "t_user"
}
