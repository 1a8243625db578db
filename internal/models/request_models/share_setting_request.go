package request_models

type CreateShareSettingRequest struct {
	SharePrice float64 `json:"sharePrice" binding:"required,gt=0"`
	ActiveFrom string  `json:"activeFrom" binding:"required,datetime=2006-01-02"`
}

// UpdateShareSettingRequest revises a setting; both fields are optional but
// at least one must be present. A revision never edits history in place, it
// appends a new versioned row.
type UpdateShareSettingRequest struct {
	SharePrice *float64 `json:"sharePrice" binding:"omitempty,gt=0"`
	ActiveFrom *string  `json:"activeFrom" binding:"omitempty,datetime=2006-01-02"`
}

func (r UpdateShareSettingRequest) Empty() bool {
	return r.SharePrice == nil && r.ActiveFrom == nil
}
