package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sharix/internal/models/db_models"
	"sharix/internal/models/response_models"
	"sharix/internal/repositories"
	"sharix/pkg/utils"
)

type fakeProofStore struct {
	uploads int
	err     error
}

func (f *fakeProofStore) Upload(ctx context.Context, fileName, contentType string, file io.Reader) (*UploadResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.uploads++
	return &UploadResult{
		URL:     "https://img.sharix.test/" + fileName,
		Receipt: []byte(`{"public_id":"` + fileName + `","bytes":42}`),
	}, nil
}

func newContributionService(db *gorm.DB, store ProofStore) ContributionServiceInterface {
	return NewContributionService(
		repositories.NewContributionRepository(db),
		repositories.NewProfileRepository(db),
		NewShareSettingService(repositories.NewShareSettingRepository(db)),
		store,
	)
}

func TestSummarize(t *testing.T) {
	ctx := context.Background()
	period := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	findSummary := func(t *testing.T, summaries []response_models.MemberSummary, email string) response_models.MemberSummary {
		t.Helper()
		for _, s := range summaries {
			if s.Email == email {
				return s
			}
		}
		t.Fatalf("no summary for %s", email)
		return response_models.MemberSummary{}
	}

	t.Run("classifies partial and complete members", func(t *testing.T) {
		db := newTestDB(t)
		svc := newContributionService(db, &fakeProofStore{})
		seedSetting(t, db, 2000, period.AddDate(0, -1, 0))

		_, profile := seedMember(t, db, "partial@x.com", 5)
		seedContribution(t, db, profile.ID, period, 4000, db_models.ContributionConfirmed)
		second := seedContribution(t, db, profile.ID, period.AddDate(0, 0, 10), 3000, db_models.ContributionConfirmed)

		summaries, err := svc.Summarize(ctx, period)
		require.NoError(t, err)

		got := findSummary(t, summaries, "partial@x.com")
		require.EqualValues(t, 7000, got.TotalPaid)
		require.EqualValues(t, 10000, got.RequiredAmount)
		require.EqualValues(t, 3000, got.RemainingAmount)
		require.Equal(t, response_models.StatusPartial, got.Status)

		// Raising the second payment to 6000 completes the commitment.
		require.NoError(t, db.Model(second).Update("amount_paid", 6000).Error)

		summaries, err = svc.Summarize(ctx, period)
		require.NoError(t, err)
		got = findSummary(t, summaries, "partial@x.com")
		require.EqualValues(t, 10000, got.TotalPaid)
		require.EqualValues(t, 0, got.RemainingAmount)
		require.Equal(t, response_models.StatusComplete, got.Status)
	})

	t.Run("a member with no confirmed payments is pending", func(t *testing.T) {
		db := newTestDB(t)
		svc := newContributionService(db, &fakeProofStore{})
		seedSetting(t, db, 2000, period.AddDate(0, -1, 0))

		_, profile := seedMember(t, db, "idle@x.com", 5)
		seedContribution(t, db, profile.ID, period, 4000, db_models.ContributionPending)

		summaries, err := svc.Summarize(ctx, period)
		require.NoError(t, err)

		got := findSummary(t, summaries, "idle@x.com")
		require.EqualValues(t, 0, got.TotalPaid)
		require.EqualValues(t, 10000, got.RequiredAmount)
		require.EqualValues(t, 10000, got.RemainingAmount)
		require.Equal(t, response_models.StatusPending, got.Status)
	})

	t.Run("only payments inside the month window count", func(t *testing.T) {
		db := newTestDB(t)
		svc := newContributionService(db, &fakeProofStore{})
		seedSetting(t, db, 2000, period.AddDate(0, -1, 0))

		_, profile := seedMember(t, db, "edges@x.com", 5)
		seedContribution(t, db, profile.ID, period.AddDate(0, 0, -1), 9999, db_models.ContributionConfirmed)
		seedContribution(t, db, profile.ID, period.AddDate(0, 1, 0), 9999, db_models.ContributionConfirmed)
		seedContribution(t, db, profile.ID, period, 1000, db_models.ContributionConfirmed)

		summaries, err := svc.Summarize(ctx, period)
		require.NoError(t, err)

		got := findSummary(t, summaries, "edges@x.com")
		require.EqualValues(t, 1000, got.TotalPaid)
		require.Equal(t, response_models.StatusPartial, got.Status)
	})

	t.Run("uses the price in effect at the period start", func(t *testing.T) {
		db := newTestDB(t)
		svc := newContributionService(db, &fakeProofStore{})
		seedSetting(t, db, 2000, period.AddDate(0, -2, 0))
		// Takes effect mid-period; the period start predates it.
		seedSetting(t, db, 5000, period.AddDate(0, 0, 15))

		_, profile := seedMember(t, db, "priced@x.com", 5)
		seedContribution(t, db, profile.ID, period, 10000, db_models.ContributionConfirmed)

		summaries, err := svc.Summarize(ctx, period)
		require.NoError(t, err)

		got := findSummary(t, summaries, "priced@x.com")
		require.EqualValues(t, 2000, got.SharePrice)
		require.Equal(t, response_models.StatusComplete, got.Status)
	})

	t.Run("no configured price reports required amount zero", func(t *testing.T) {
		db := newTestDB(t)
		svc := newContributionService(db, &fakeProofStore{})

		_, profile := seedMember(t, db, "unpriced@x.com", 5)
		seedContribution(t, db, profile.ID, period, 4000, db_models.ContributionConfirmed)

		summaries, err := svc.Summarize(ctx, period)
		require.NoError(t, err)

		got := findSummary(t, summaries, "unpriced@x.com")
		require.EqualValues(t, 0, got.SharePrice)
		require.EqualValues(t, 0, got.RequiredAmount)
		require.EqualValues(t, 4000, got.TotalPaid)
	})
}

func TestApprove(t *testing.T) {
	ctx := context.Background()
	month := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	t.Run("confirms a pending contribution", func(t *testing.T) {
		db := newTestDB(t)
		svc := newContributionService(db, &fakeProofStore{})
		manager := seedManager(t, db)
		_, profile := seedMember(t, db, "m@x.com", 5)
		pending := seedContribution(t, db, profile.ID, month, 4000, db_models.ContributionPending)

		approved, err := svc.Approve(ctx, pending.ID, manager.ID)
		require.NoError(t, err)
		require.Equal(t, db_models.ContributionConfirmed, approved.Status)
		require.Equal(t, manager.ID, *approved.ConfirmedBy)
	})

	t.Run("approving twice fails and changes nothing", func(t *testing.T) {
		db := newTestDB(t)
		svc := newContributionService(db, &fakeProofStore{})
		manager := seedManager(t, db)
		other := seedManager2(t, db)
		_, profile := seedMember(t, db, "m@x.com", 5)
		pending := seedContribution(t, db, profile.ID, month, 4000, db_models.ContributionPending)

		_, err := svc.Approve(ctx, pending.ID, manager.ID)
		require.NoError(t, err)

		_, err = svc.Approve(ctx, pending.ID, other.ID)
		require.ErrorIs(t, err, utils.ErrAlreadyApproved)

		var stored db_models.Contribution
		require.NoError(t, db.First(&stored, "id = ?", pending.ID).Error)
		require.Equal(t, db_models.ContributionConfirmed, stored.Status)
		require.Equal(t, manager.ID, *stored.ConfirmedBy)
	})

	t.Run("unknown contribution id", func(t *testing.T) {
		db := newTestDB(t)
		svc := newContributionService(db, &fakeProofStore{})
		manager := seedManager(t, db)

		_, err := svc.Approve(ctx, uuid.New(), manager.ID)
		require.ErrorIs(t, err, utils.ErrContributionNotFound)
	})
}

func seedManager2(t *testing.T, db *gorm.DB) *db_models.User {
	t.Helper()

	second := &db_models.User{
		Email:    "manager2@sharix.test",
		Role:     db_models.RoleManager,
		IsActive: true,
	}
	require.NoError(t, db.Create(second).Error)
	return second
}

func TestSubmitProof(t *testing.T) {
	ctx := context.Background()
	month := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	t.Run("stores the upload url on the pending record", func(t *testing.T) {
		db := newTestDB(t)
		store := &fakeProofStore{}
		svc := newContributionService(db, store)
		user, _ := seedMember(t, db, "m@x.com", 5)

		contribution, err := svc.SubmitProof(ctx, user.ID, month, 4000, &ProofUpload{
			FileName:    "receipt.png",
			ContentType: "image/png",
			File:        strings.NewReader("png-bytes"),
		})
		require.NoError(t, err)
		require.Equal(t, db_models.ContributionPending, contribution.Status)
		require.NotNil(t, contribution.ProofURL)
		require.Equal(t, "https://img.sharix.test/receipt.png", *contribution.ProofURL)
		require.Equal(t, 1, store.uploads)
	})

	t.Run("proof is optional", func(t *testing.T) {
		db := newTestDB(t)
		svc := newContributionService(db, &fakeProofStore{})
		user, _ := seedMember(t, db, "m@x.com", 5)

		contribution, err := svc.SubmitProof(ctx, user.ID, month, 4000, nil)
		require.NoError(t, err)
		require.Nil(t, contribution.ProofURL)
	})

	t.Run("a rejected upload leaves no record", func(t *testing.T) {
		db := newTestDB(t)
		svc := newContributionService(db, &fakeProofStore{err: errors.New("bucket unavailable")})
		user, _ := seedMember(t, db, "m@x.com", 5)

		_, err := svc.SubmitProof(ctx, user.ID, month, 4000, &ProofUpload{
			FileName:    "receipt.png",
			ContentType: "image/png",
			File:        strings.NewReader("png-bytes"),
		})
		require.ErrorIs(t, err, utils.ErrUploadFailed)

		var count int64
		require.NoError(t, db.Model(&db_models.Contribution{}).Count(&count).Error)
		require.EqualValues(t, 0, count)
	})

	t.Run("callers without a profile are rejected", func(t *testing.T) {
		db := newTestDB(t)
		svc := newContributionService(db, &fakeProofStore{})
		manager := seedManager(t, db)

		_, err := svc.SubmitProof(ctx, manager.ID, month, 4000, nil)
		require.ErrorIs(t, err, utils.ErrProfileNotFound)
	})
}

func TestMemberContributions(t *testing.T) {
	ctx := context.Background()
	month := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	db := newTestDB(t)
	svc := newContributionService(db, &fakeProofStore{})
	user, profile := seedMember(t, db, "m@x.com", 5)
	seedContribution(t, db, profile.ID, month.AddDate(0, -2, 0), 1000, db_models.ContributionConfirmed)
	seedContribution(t, db, profile.ID, month, 2000, db_models.ContributionPending)

	contributions, err := svc.MemberContributions(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, contributions, 2)
	// Newest month first.
	require.True(t, contributions[0].Month.After(contributions[1].Month))
}
