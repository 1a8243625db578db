package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"sharix/internal/models/request_models"
	"sharix/internal/services"
	"sharix/pkg/middleware"
	"sharix/pkg/utils"
)

type ContributionController struct {
	contributionService services.ContributionServiceInterface
}

func NewContributionController(contributionService services.ContributionServiceInterface) *ContributionController {
	return &ContributionController{
		contributionService: contributionService,
	}
}

func callerUUID(c *gin.Context) (uuid.UUID, bool) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(callerID)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// Submit godoc
// @Summary Submit a contribution proof
// @Description Record a pending payment for the caller's member profile, optionally with a proof image
// @Tags Contributions
// @Accept multipart/form-data
// @Produce json
// @Param month formData string true "Payment month (YYYY-MM-DD)"
// @Param amountPaid formData number true "Amount paid"
// @Param proof formData file false "Proof image"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /contributions [post]
func (ct *ContributionController) Submit(c *gin.Context) {
	var req request_models.SubmitContributionRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondValidationError(c, "Invalid request format", utils.BindingErrorDetails(err))
		return
	}

	month, err := time.Parse("2006-01-02", req.Month)
	if err != nil {
		utils.RespondValidationError(c, "Invalid request format", map[string]string{
			"month": "must match format 2006-01-02",
		})
		return
	}

	var proof *services.ProofUpload
	fileHeader, err := c.FormFile("proof")
	if err == nil && fileHeader != nil {
		contentType := fileHeader.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			utils.RespondValidationError(c, "Invalid request format", map[string]string{
				"proof": "must be an image",
			})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			utils.HandleServiceError(c, utils.ErrUploadFailed)
			return
		}
		defer file.Close()

		proof = &services.ProofUpload{
			FileName:    fileHeader.Filename,
			ContentType: contentType,
			File:        file,
		}
	}

	userID, ok := callerUUID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authorization required")
		return
	}

	contribution, err := ct.contributionService.SubmitProof(c.Request.Context(), userID, month, req.AmountPaid, proof)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, contribution, "Contribution proof submitted")
}

// Approve godoc
// @Summary Approve a contribution
// @Description Confirm a pending contribution; approving twice fails
// @Tags Contributions
// @Produce json
// @Param id path string true "Contribution id"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /contributions/approve/{id} [patch]
func (ct *ContributionController) Approve(c *gin.Context) {
	contributionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondValidationError(c, "Invalid request format", map[string]string{
			"id": "must be a valid id",
		})
		return
	}

	approverID, ok := callerUUID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authorization required")
		return
	}

	contribution, err := ct.contributionService.Approve(c.Request.Context(), contributionID, approverID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, contribution, "Contribution approved")
}

// Summary godoc
// @Summary Monthly contribution summary
// @Description Reconcile every member's confirmed payments for a month against their commitment
// @Tags Contributions
// @Produce json
// @Param month query string true "Period month (YYYY-MM)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /contributions/summary [get]
func (ct *ContributionController) Summary(c *gin.Context) {
	var query request_models.ContributionSummaryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondValidationError(c, "Month is required", utils.BindingErrorDetails(err))
		return
	}

	periodMonth, err := utils.ParseMonth(query.Month)
	if err != nil {
		utils.RespondValidationError(c, "Month is required", map[string]string{
			"month": "must match format YYYY-MM",
		})
		return
	}

	summary, err := ct.contributionService.Summarize(c.Request.Context(), periodMonth)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Contribution summary fetched")
}

// Mine godoc
// @Summary List the caller's contributions
// @Tags Contributions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /contributions/mine [get]
func (ct *ContributionController) Mine(c *gin.Context) {
	userID, ok := callerUUID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authorization required")
		return
	}

	contributions, err := ct.contributionService.MemberContributions(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, contributions, "My contributions fetched")
}
