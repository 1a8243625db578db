package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sharix/internal/infra"
	"sharix/internal/models/db_models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, infra.AutoMigrate(db))

	return db
}

func seedManager(t *testing.T, db *gorm.DB) *db_models.User {
	t.Helper()

	hash := "$2a$10$unusedunusedunusedunusedunusedunusedunusedunusedunus"
	manager := &db_models.User{
		Email:        "manager@sharix.test",
		PasswordHash: &hash,
		Role:         db_models.RoleManager,
		IsActive:     true,
	}
	require.NoError(t, db.Create(manager).Error)
	return manager
}

func seedMember(t *testing.T, db *gorm.DB, email string, commitment int) (*db_models.User, *db_models.MemberProfile) {
	t.Helper()

	user := &db_models.User{
		Email:    email,
		Role:     db_models.RoleMember,
		IsActive: true,
	}
	require.NoError(t, db.Create(user).Error)

	profile := &db_models.MemberProfile{
		UserID:                 user.ID,
		MonthlyShareCommitment: commitment,
		PhoneNumber:            "0712345678",
		JoinDate:               time.Now(),
	}
	require.NoError(t, db.Create(profile).Error)

	return user, profile
}

func seedContribution(t *testing.T, db *gorm.DB, profileID uuid.UUID, month time.Time, amount float64, status db_models.ContributionStatus) *db_models.Contribution {
	t.Helper()

	contribution := &db_models.Contribution{
		ProfileID:  profileID,
		Month:      month,
		AmountPaid: amount,
		Status:     status,
	}
	require.NoError(t, db.Create(contribution).Error)
	return contribution
}

func seedSetting(t *testing.T, db *gorm.DB, price float64, activeFrom time.Time) *db_models.ShareSetting {
	t.Helper()

	setting := &db_models.ShareSetting{
		SharePrice: price,
		ActiveFrom: activeFrom,
	}
	require.NoError(t, db.Create(setting).Error)
	return setting
}

type fakeMailService struct {
	sent []string
	err  error
}

func (f *fakeMailService) SendInviteMail(to, token string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)
	return nil
}
