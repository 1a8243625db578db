package services

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
	"sharix/internal/models/db_models"
	"sharix/internal/models/response_models"
	"sharix/internal/repositories"
	"sharix/pkg/utils"
)

// ProofUpload carries an optional proof image from the request boundary.
type ProofUpload struct {
	FileName    string
	ContentType string
	File        io.Reader
}

type ContributionServiceInterface interface {
	SubmitProof(ctx context.Context, userID uuid.UUID, month time.Time, amountPaid float64, proof *ProofUpload) (*db_models.Contribution, error)
	Approve(ctx context.Context, contributionID uuid.UUID, approverID uuid.UUID) (*db_models.Contribution, error)
	Summarize(ctx context.Context, periodMonth time.Time) ([]response_models.MemberSummary, error)
	MemberContributions(ctx context.Context, userID uuid.UUID) ([]db_models.Contribution, error)
}

type ContributionService struct {
	contributionRepo repositories.ContributionRepository
	profileRepo      repositories.ProfileRepository
	settingService   ShareSettingServiceInterface
	proofStore       ProofStore
}

func NewContributionService(
	contributionRepo repositories.ContributionRepository,
	profileRepo repositories.ProfileRepository,
	settingService ShareSettingServiceInterface,
	proofStore ProofStore,
) ContributionServiceInterface {
	return &ContributionService{
		contributionRepo: contributionRepo,
		profileRepo:      profileRepo,
		settingService:   settingService,
		proofStore:       proofStore,
	}
}

// SubmitProof uploads the proof image first and only then persists the
// pending contribution; a rejected upload leaves no row behind.
func (s *ContributionService) SubmitProof(ctx context.Context, userID uuid.UUID, month time.Time, amountPaid float64, proof *ProofUpload) (*db_models.Contribution, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		log.Printf("profile lookup failed: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}

	contribution := &db_models.Contribution{
		ProfileID:  profile.ID,
		Month:      month,
		AmountPaid: amountPaid,
		Status:     db_models.ContributionPending,
	}

	if proof != nil {
		uploaded, err := s.proofStore.Upload(ctx, proof.FileName, proof.ContentType, proof.File)
		if err != nil {
			log.Printf("proof upload failed: %v", err)
			return nil, utils.ErrUploadFailed
		}
		contribution.ProofURL = &uploaded.URL
		contribution.ProofMeta = []byte(uploaded.Receipt)
	}

	if err := s.contributionRepo.Create(ctx, contribution); err != nil {
		log.Printf("contribution creation failed: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return contribution, nil
}

// Approve flips a pending contribution to confirmed. Approving an already
// confirmed contribution fails and changes nothing.
func (s *ContributionService) Approve(ctx context.Context, contributionID uuid.UUID, approverID uuid.UUID) (*db_models.Contribution, error) {
	contribution, err := s.contributionRepo.FindByID(ctx, contributionID)
	if err != nil {
		log.Printf("contribution lookup failed: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if contribution == nil {
		return nil, utils.ErrContributionNotFound
	}
	if contribution.Status == db_models.ContributionConfirmed {
		return nil, utils.ErrAlreadyApproved
	}

	rows, err := s.contributionRepo.ConfirmIfPending(ctx, contributionID, approverID)
	if err != nil {
		log.Printf("contribution approval failed: %v", err)
		return nil, utils.ErrDatabaseError
	}
	// A concurrent approval may have won between the read and the update.
	if rows == 0 {
		return nil, utils.ErrAlreadyApproved
	}

	approved, err := s.contributionRepo.FindByID(ctx, contributionID)
	if err != nil || approved == nil {
		log.Printf("approved contribution reload failed: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return approved, nil
}

// Summarize computes each member's standing for the calendar month: the sum
// of confirmed contributions inside the half-open month window against the
// commitment priced at the rate in effect at the period start. Pure
// aggregation; safe to re-run at any time.
func (s *ContributionService) Summarize(ctx context.Context, periodMonth time.Time) ([]response_models.MemberSummary, error) {
	start, end := utils.MonthWindow(periodMonth)

	profiles, err := s.contributionRepo.ProfilesWithConfirmedInWindow(ctx, start, end)
	if err != nil {
		log.Printf("summary query failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	setting, err := s.settingService.ResolveActivePrice(ctx, start)
	if err != nil {
		return nil, err
	}

	// No configured price means required amounts are unknown, reported as 0.
	var sharePrice float64
	if setting != nil {
		sharePrice = setting.SharePrice
	}

	summaries := make([]response_models.MemberSummary, 0, len(profiles))
	for _, profile := range profiles {
		var totalPaid float64
		for _, c := range profile.Contributions {
			totalPaid += c.AmountPaid
		}

		requiredAmount := float64(profile.MonthlyShareCommitment) * sharePrice
		remainingAmount := requiredAmount - totalPaid
		if remainingAmount < 0 {
			remainingAmount = 0
		}

		status := response_models.StatusPending
		switch {
		case totalPaid >= requiredAmount:
			status = response_models.StatusComplete
		case totalPaid > 0:
			status = response_models.StatusPartial
		}

		summaries = append(summaries, response_models.MemberSummary{
			MemberID:         profile.ID,
			Email:            profile.User.Email,
			TotalPaid:        totalPaid,
			SharePrice:       sharePrice,
			CommitmentShares: profile.MonthlyShareCommitment,
			RequiredAmount:   requiredAmount,
			RemainingAmount:  remainingAmount,
			Status:           status,
		})
	}
	return summaries, nil
}

func (s *ContributionService) MemberContributions(ctx context.Context, userID uuid.UUID) ([]db_models.Contribution, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		log.Printf("profile lookup failed: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}

	contributions, err := s.contributionRepo.ListByProfile(ctx, profile.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return contributions, nil
}
