package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"sharix/internal/models/db_models"
)

type ShareSettingRepository interface {
	Create(ctx context.Context, setting *db_models.ShareSetting) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.ShareSetting, error)
	ActiveAsOf(ctx context.Context, asOf time.Time) (*db_models.ShareSetting, error)
}

type shareSettingRepository struct {
	db *gorm.DB
}

func NewShareSettingRepository(db *gorm.DB) ShareSettingRepository {
	return &shareSettingRepository{db: db}
}

func (r *shareSettingRepository) Create(ctx context.Context, setting *db_models.ShareSetting) error {
	return r.db.WithContext(ctx).Create(setting).Error
}

func (r *shareSettingRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.ShareSetting, error) {
	var setting db_models.ShareSetting
	err := r.db.WithContext(ctx).First(&setting, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &setting, nil
}

// ActiveAsOf returns the setting with the greatest active_from <= asOf, or
// nil when no price has taken effect yet.
func (r *shareSettingRepository) ActiveAsOf(ctx context.Context, asOf time.Time) (*db_models.ShareSetting, error) {
	var setting db_models.ShareSetting
	err := r.db.WithContext(ctx).
		Where("active_from <= ?", asOf).
		Order("active_from DESC").
		First(&setting).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &setting, nil
}
