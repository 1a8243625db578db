package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"sharix/internal/models/db_models"
)

type ContributionRepository interface {
	Create(ctx context.Context, contribution *db_models.Contribution) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Contribution, error)
	ConfirmIfPending(ctx context.Context, id uuid.UUID, approverID uuid.UUID) (int64, error)
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]db_models.Contribution, error)
	ProfilesWithConfirmedInWindow(ctx context.Context, start, end time.Time) ([]db_models.MemberProfile, error)
}

type contributionRepository struct {
	db *gorm.DB
}

func NewContributionRepository(db *gorm.DB) ContributionRepository {
	return &contributionRepository{db: db}
}

func (r *contributionRepository) Create(ctx context.Context, contribution *db_models.Contribution) error {
	return r.db.WithContext(ctx).Create(contribution).Error
}

func (r *contributionRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Contribution, error) {
	var contribution db_models.Contribution
	err := r.db.WithContext(ctx).First(&contribution, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &contribution, nil
}

// ConfirmIfPending flips a contribution to confirmed in a single guarded
// UPDATE. Zero rows affected means another approval already won the race.
func (r *contributionRepository) ConfirmIfPending(ctx context.Context, id uuid.UUID, approverID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&db_models.Contribution{}).
		Where("id = ? AND status <> ?", id, db_models.ContributionConfirmed).
		Updates(map[string]interface{}{
			"status":       db_models.ContributionConfirmed,
			"confirmed_by": approverID,
		})
	return res.RowsAffected, res.Error
}

func (r *contributionRepository) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]db_models.Contribution, error) {
	var contributions []db_models.Contribution
	err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("month DESC").
		Find(&contributions).Error
	if err != nil {
		return nil, err
	}
	return contributions, nil
}

// ProfilesWithConfirmedInWindow loads every member profile with its owning
// user and only the confirmed contributions falling inside [start, end).
func (r *contributionRepository) ProfilesWithConfirmedInWindow(ctx context.Context, start, end time.Time) ([]db_models.MemberProfile, error) {
	var profiles []db_models.MemberProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Contributions", "month >= ? AND month < ? AND status = ?", start, end, db_models.ContributionConfirmed).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
