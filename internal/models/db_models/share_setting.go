package db_models

import "time"

// ShareSetting is a versioned price-per-share record. The row with the
// greatest ActiveFrom <= the as-of date is the one in effect; history is
// never mutated, revisions append a new row.
type ShareSetting struct {
	BaseModel
	SharePrice float64   `gorm:"type:numeric" json:"sharePrice"`
	ActiveFrom time.Time `gorm:"index" json:"activeFrom"`
}
