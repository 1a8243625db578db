package db_models

import (
	"time"

	"github.com/google/uuid"
)

type MemberProfile struct {
	BaseModel
	UserID                 uuid.UUID `gorm:"uniqueIndex" json:"userId"`
	MonthlyShareCommitment int       `json:"monthlyShareCommitment"`
	PhoneNumber            string    `gorm:"size:32" json:"phoneNumber"`
	JoinDate               time.Time `json:"joinDate"`

	User          User           `gorm:"foreignKey:UserID" json:"-"`
	Contributions []Contribution `gorm:"foreignKey:ProfileID" json:"-"`
}
