package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"sharix/internal/models/db_models"
)

// ErrInviteConsumed signals that the acceptance transaction found the invite
// already stamped. The whole transaction rolls back.
var ErrInviteConsumed = errors.New("invite already consumed")

type InviteRepository interface {
	CreateUserAndInvite(ctx context.Context, user *db_models.User, invite *db_models.Invite) error
	FindPendingByUserID(ctx context.Context, userID uuid.UUID, now time.Time) (*db_models.Invite, error)
	FindByToken(ctx context.Context, token string) (*db_models.Invite, error)
	ListAll(ctx context.Context) ([]db_models.Invite, error)
	ListPending(ctx context.Context) ([]db_models.Invite, error)
	ListAccepted(ctx context.Context) ([]db_models.Invite, error)
	Accept(ctx context.Context, invite *db_models.Invite, passwordHash string, profile *db_models.MemberProfile) error
}

type inviteRepository struct {
	db *gorm.DB
}

func NewInviteRepository(db *gorm.DB) InviteRepository {
	return &inviteRepository{db: db}
}

// CreateUserAndInvite persists the inactive user and their invite together;
// either both rows exist afterwards or neither does.
func (r *inviteRepository) CreateUserAndInvite(ctx context.Context, user *db_models.User, invite *db_models.Invite) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Create(user).Error; err != nil {
			return err
		}
		invite.UserID = user.ID
		if err := tx.WithContext(ctx).Create(invite).Error; err != nil {
			return err
		}
		return nil
	})
}

func (r *inviteRepository) FindPendingByUserID(ctx context.Context, userID uuid.UUID, now time.Time) (*db_models.Invite, error) {
	var invite db_models.Invite
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND expires_at > ? AND accepted_at IS NULL", userID, now).
		First(&invite).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &invite, nil
}

func (r *inviteRepository) FindByToken(ctx context.Context, token string) (*db_models.Invite, error) {
	var invite db_models.Invite
	err := r.db.WithContext(ctx).Where("token = ?", token).First(&invite).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &invite, nil
}

func (r *inviteRepository) ListAll(ctx context.Context) ([]db_models.Invite, error) {
	var invites []db_models.Invite
	err := r.db.WithContext(ctx).Find(&invites).Error
	if err != nil {
		return nil, err
	}
	return invites, nil
}

func (r *inviteRepository) ListPending(ctx context.Context) ([]db_models.Invite, error) {
	var invites []db_models.Invite
	err := r.db.WithContext(ctx).Where("accepted_at IS NULL").Find(&invites).Error
	if err != nil {
		return nil, err
	}
	return invites, nil
}

func (r *inviteRepository) ListAccepted(ctx context.Context) ([]db_models.Invite, error) {
	var invites []db_models.Invite
	err := r.db.WithContext(ctx).Where("accepted_at IS NOT NULL").Find(&invites).Error
	if err != nil {
		return nil, err
	}
	return invites, nil
}

// Accept runs the three acceptance writes in one transaction: activate the
// user with their password hash, create the member profile, stamp the invite.
// The stamp is guarded on accepted_at IS NULL so two concurrent acceptances
// cannot both commit; the loser rolls back everything.
func (r *inviteRepository) Accept(ctx context.Context, invite *db_models.Invite, passwordHash string, profile *db_models.MemberProfile) error {
	now := time.Now()

	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.WithContext(ctx).Model(&db_models.User{}).
			Where("id = ?", invite.UserID).
			Updates(map[string]interface{}{
				"is_active":     true,
				"password_hash": passwordHash,
			}).Error
		if err != nil {
			return err
		}

		profile.UserID = invite.UserID
		if err := tx.WithContext(ctx).Create(profile).Error; err != nil {
			return err
		}

		res := tx.WithContext(ctx).Model(&db_models.Invite{}).
			Where("token = ? AND accepted_at IS NULL", invite.Token).
			Update("accepted_at", now)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInviteConsumed
		}

		invite.AcceptedAt = &now
		return nil
	})
}
