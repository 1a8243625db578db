package response_models

import (
	"sharix/internal/models/db_models"
)

type CreateInviteResponse struct {
	User   db_models.User   `json:"user"`
	Invite db_models.Invite `json:"invite"`
}
