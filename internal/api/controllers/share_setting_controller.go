package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"sharix/internal/models/request_models"
	"sharix/internal/services"
	"sharix/pkg/utils"
)

type ShareSettingController struct {
	settingService services.ShareSettingServiceInterface
}

func NewShareSettingController(settingService services.ShareSettingServiceInterface) *ShareSettingController {
	return &ShareSettingController{
		settingService: settingService,
	}
}

// Create godoc
// @Summary Create a share price setting
// @Tags ShareSettings
// @Accept json
// @Produce json
// @Param request body request_models.CreateShareSettingRequest true "Share setting payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /share-settings [post]
func (s *ShareSettingController) Create(c *gin.Context) {
	var req request_models.CreateShareSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, "Invalid request format", utils.BindingErrorDetails(err))
		return
	}

	setting, err := s.settingService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, setting, "Share setting created")
}

// Update godoc
// @Summary Revise a share price setting
// @Description Appends a new versioned setting seeded from the existing one
// @Tags ShareSettings
// @Accept json
// @Produce json
// @Param id path string true "Setting id"
// @Param request body request_models.UpdateShareSettingRequest true "Revision payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /share-settings/{id} [patch]
func (s *ShareSettingController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondValidationError(c, "Invalid request format", map[string]string{
			"id": "must be a valid id",
		})
		return
	}

	var req request_models.UpdateShareSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, "Invalid request format", utils.BindingErrorDetails(err))
		return
	}
	if req.Empty() {
		utils.RespondValidationError(c, "Invalid request format", map[string]string{
			"body": "sharePrice or activeFrom is required",
		})
		return
	}

	setting, err := s.settingService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, setting, "Share setting revised")
}

// Current godoc
// @Summary Get the share price currently in effect
// @Tags ShareSettings
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /share-settings [get]
func (s *ShareSettingController) Current(c *gin.Context) {
	setting, err := s.settingService.ResolveActivePrice(c.Request.Context(), time.Now())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	// nil means no price configured yet; callers must treat it as unknown.
	utils.RespondSuccess(c, setting, "Current share setting fetched")
}
