package dbmysql

import (
	"time"
)

// FriendStatus is the lifecycle state of a friend relation. A row never
// reverts to "no row": terminating an active relation keeps the row around
// with StatusTerminated.
type FriendStatus string

const (
	StatusPending    FriendStatus = "pending"
	StatusActive     FriendStatus = "active"
	StatusTerminated FriendStatus = "terminated"
)

// Friend is the single record for an unordered user pair. The applicant is
// the party who sent the request; the two follow flags are oriented by that
// direction and only ever hold true while Status is active.
type Friend struct {
	FriendPK         string       `gorm:"primaryKey;column:frnd_pk;size:45" json:"friendPk"`
	ApplicantID      string       `gorm:"column:applicant_id;size:45;not null;index:idx_applicant_acceptor,unique" json:"applicantId"`
	AcceptorID       string       `gorm:"column:acceptor_id;size:45;not null;index:idx_applicant_acceptor,unique" json:"acceptorId"`
	Status           FriendStatus `gorm:"column:status;type:enum('pending','active','terminated');default:'pending'" json:"status"`
	ApplicantFollows bool         `gorm:"column:applicant_follows;not null;default:false" json:"applicantFollows"`
	AcceptorFollows  bool         `gorm:"column:acceptor_follows;not null;default:false" json:"acceptorFollows"`
	CreatedAt        time.Time    `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt        time.Time    `gorm:"column:updated_at" json:"updatedAt"`
}

func (Friend) TableName() string {
	return "t_frnd"
}

// Accepted reports whether the relation is currently active. Kept as a
// method so callers never compare status strings directly.
func (f *Friend) Accepted() bool {
	return f.Status == StatusActive
}
