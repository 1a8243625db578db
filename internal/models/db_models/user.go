package db_models

import (
	"github.com/google/uuid"
)

// User starts life inactive and password-less when a manager invites them.
// Activation happens once, when the invite is accepted.
type User struct {
	BaseModel
	Email        string     `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash *string    `json:"-"`
	Role         Role       `gorm:"size:20;index" json:"role"`
	IsActive     bool       `gorm:"default:false" json:"isActive"`
	InvitedBy    *uuid.UUID `gorm:"index" json:"invitedBy"`

	Invite  *Invite        `gorm:"foreignKey:UserID" json:"-"`
	Profile *MemberProfile `gorm:"foreignKey:UserID" json:"-"`
}
