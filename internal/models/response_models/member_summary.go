package response_models

import "github.com/google/uuid"

type MemberStatus string

const (
	StatusPending  MemberStatus = "Pending"
	StatusPartial  MemberStatus = "Partial"
	StatusComplete MemberStatus = "Complete"
)

// MemberSummary is one member's standing for a reconciliation period.
type MemberSummary struct {
	MemberID         uuid.UUID    `json:"memberId"`
	Email            string       `json:"email"`
	TotalPaid        float64      `json:"totalPaid"`
	SharePrice       float64      `json:"sharePrice"`
	CommitmentShares int          `json:"commitmentShares"`
	RequiredAmount   float64      `json:"requiredAmount"`
	RemainingAmount  float64      `json:"remainingAmount"`
	Status           MemberStatus `json:"status"`
}
