package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ContributionStatus string

const (
	ContributionPending   ContributionStatus = "pending"
	ContributionConfirmed ContributionStatus = "confirmed"
)

// Contribution is a single payment record. It is created pending by a member
// and flipped to confirmed exactly once by an approver.
type Contribution struct {
	BaseModel
	ProfileID   uuid.UUID          `gorm:"index" json:"profileId"`
	Month       time.Time          `gorm:"index" json:"month"`
	AmountPaid  float64            `gorm:"type:numeric" json:"amountPaid"`
	ProofURL    *string            `json:"proofUrl"`
	Status      ContributionStatus `gorm:"size:20;index" json:"status"`
	ConfirmedBy *uuid.UUID         `json:"confirmedBy"`

	// Raw upload receipt from the image store (provider id, bytes, format).
	ProofMeta datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"-"`

	Profile MemberProfile `gorm:"foreignKey:ProfileID" json:"-"`
}
