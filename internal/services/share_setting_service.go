package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"sharix/internal/models/db_models"
	"sharix/internal/models/request_models"
	"sharix/internal/repositories"
	"sharix/pkg/utils"
)

type ShareSettingServiceInterface interface {
	Create(ctx context.Context, request request_models.CreateShareSettingRequest) (*db_models.ShareSetting, error)
	Update(ctx context.Context, id uuid.UUID, request request_models.UpdateShareSettingRequest) (*db_models.ShareSetting, error)
	ResolveActivePrice(ctx context.Context, asOf time.Time) (*db_models.ShareSetting, error)
}

type ShareSettingService struct {
	settingRepo repositories.ShareSettingRepository
}

func NewShareSettingService(settingRepo repositories.ShareSettingRepository) ShareSettingServiceInterface {
	return &ShareSettingService{settingRepo: settingRepo}
}

func (s *ShareSettingService) Create(ctx context.Context, request request_models.CreateShareSettingRequest) (*db_models.ShareSetting, error) {
	activeFrom, err := time.Parse("2006-01-02", request.ActiveFrom)
	if err != nil {
		return nil, utils.ErrInvalidDate
	}

	setting := &db_models.ShareSetting{
		SharePrice: request.SharePrice,
		ActiveFrom: activeFrom,
	}
	if err := s.settingRepo.Create(ctx, setting); err != nil {
		log.Printf("share setting creation failed: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return setting, nil
}

// Update revises a setting by appending a new versioned row seeded from the
// existing one; the historical row itself is never edited.
func (s *ShareSettingService) Update(ctx context.Context, id uuid.UUID, request request_models.UpdateShareSettingRequest) (*db_models.ShareSetting, error) {
	existing, err := s.settingRepo.FindByID(ctx, id)
	if err != nil {
		log.Printf("share setting lookup failed: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, utils.ErrSettingNotFound
	}

	revised := &db_models.ShareSetting{
		SharePrice: existing.SharePrice,
		ActiveFrom: existing.ActiveFrom,
	}
	if request.SharePrice != nil {
		revised.SharePrice = *request.SharePrice
	}
	if request.ActiveFrom != nil {
		activeFrom, err := time.Parse("2006-01-02", *request.ActiveFrom)
		if err != nil {
			return nil, utils.ErrInvalidDate
		}
		revised.ActiveFrom = activeFrom
	}

	if err := s.settingRepo.Create(ctx, revised); err != nil {
		log.Printf("share setting revision failed: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return revised, nil
}

// ResolveActivePrice returns the setting in effect as of the given date, or
// (nil, nil) when no price has been configured yet. Callers must treat the
// nil result as "price unknown", never as zero.
func (s *ShareSettingService) ResolveActivePrice(ctx context.Context, asOf time.Time) (*db_models.ShareSetting, error) {
	setting, err := s.settingRepo.ActiveAsOf(ctx, asOf)
	if err != nil {
		log.Printf("active price lookup failed: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return setting, nil
}
