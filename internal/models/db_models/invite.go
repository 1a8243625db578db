package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Invite is single-use: AcceptedAt is stamped exactly once and the row is
// never re-issued. The signed token carries its own expiry as well; both
// checks must pass on acceptance.
type Invite struct {
	BaseModel
	UserID     uuid.UUID  `gorm:"index" json:"userId"`
	Token      string     `gorm:"uniqueIndex;size:512" json:"token"`
	ExpiresAt  time.Time  `json:"expiresAt"`
	AcceptedAt *time.Time `json:"acceptedAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (i *Invite) ExpiredAt(now time.Time) bool {
	return i.ExpiresAt.Before(now)
}

func (i *Invite) Consumed() bool {
	return i.AcceptedAt != nil
}
