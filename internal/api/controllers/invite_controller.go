package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"sharix/internal/models/db_models"
	"sharix/internal/models/request_models"
	"sharix/internal/services"
	"sharix/pkg/middleware"
	"sharix/pkg/utils"
)

type InviteController struct {
	inviteService services.InviteServiceInterface
}

func NewInviteController(inviteService services.InviteServiceInterface) *InviteController {
	return &InviteController{
		inviteService: inviteService,
	}
}

// Create godoc
// @Summary Invite a user
// @Description Create an inactive user and send them an invitation token
// @Tags Invites
// @Accept json
// @Produce json
// @Param request body request_models.CreateInviteRequest true "Invite payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /invites [post]
func (i *InviteController) Create(c *gin.Context) {
	var req request_models.CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, "Invalid request format", utils.BindingErrorDetails(err))
		return
	}

	role, ok := db_models.ParseRole(req.Role)
	if !ok {
		utils.RespondValidationError(c, "Invalid request format", map[string]string{
			"role": "must be one of manager, member, board",
		})
		return
	}

	callerID, ok := middleware.CallerID(c)
	inviterID, err := uuid.Parse(callerID)
	if !ok || err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Authorization required")
		return
	}

	result, err := i.inviteService.CreateInvite(c.Request.Context(), req.Email, role, inviterID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, result, "Invitation sent")
}

// All godoc
// @Summary List all invites
// @Tags Invites
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /invites [get]
func (i *InviteController) All(c *gin.Context) {
	invites, err := i.inviteService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, invites, "All invites retrieved")
}

// Pending godoc
// @Summary List pending invites
// @Tags Invites
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /invites/pending [get]
func (i *InviteController) Pending(c *gin.Context) {
	invites, err := i.inviteService.ListPending(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, invites, "Pending invites retrieved")
}

// Accepted godoc
// @Summary List accepted invites
// @Tags Invites
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /invites/accepted [get]
func (i *InviteController) Accepted(c *gin.Context) {
	invites, err := i.inviteService.ListAccepted(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, invites, "Accepted invites retrieved")
}

// Confirm godoc
// @Summary Accept an invite
// @Description Set the invited user's password and create their member profile
// @Tags Invites
// @Accept json
// @Produce json
// @Param token path string true "Invite token"
// @Param request body request_models.AcceptInviteRequest true "Profile payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /invites/confirm/{token} [post]
func (i *InviteController) Confirm(c *gin.Context) {
	token := c.Param("token")

	var req request_models.AcceptInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, "Invalid request format", utils.BindingErrorDetails(err))
		return
	}

	if missing := req.PasswordPolicyErrors(); len(missing) > 0 {
		utils.RespondValidationError(c, "Invalid request format", map[string]interface{}{
			"password": missing,
		})
		return
	}

	profile, err := i.inviteService.AcceptInvite(c.Request.Context(), token, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Invite accepted")
}
