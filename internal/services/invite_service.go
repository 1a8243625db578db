package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"sharix/internal/models/db_models"
	"sharix/internal/models/request_models"
	"sharix/internal/models/response_models"
	"sharix/internal/repositories"
	"sharix/pkg/utils"
)

type InviteServiceInterface interface {
	CreateInvite(ctx context.Context, email string, role db_models.Role, inviterID uuid.UUID) (*response_models.CreateInviteResponse, error)
	AcceptInvite(ctx context.Context, token string, request request_models.AcceptInviteRequest) (*db_models.MemberProfile, error)
	ListAll(ctx context.Context) ([]db_models.Invite, error)
	ListPending(ctx context.Context) ([]db_models.Invite, error)
	ListAccepted(ctx context.Context) ([]db_models.Invite, error)
}

type InviteService struct {
	inviteRepo repositories.InviteRepository
	userRepo   repositories.UserRepository
	issuer     *utils.InviteTokenIssuer
	mail       IMailService
}

func NewInviteService(
	inviteRepo repositories.InviteRepository,
	userRepo repositories.UserRepository,
	issuer *utils.InviteTokenIssuer,
	mail IMailService,
) InviteServiceInterface {
	return &InviteService{
		inviteRepo: inviteRepo,
		userRepo:   userRepo,
		issuer:     issuer,
		mail:       mail,
	}
}

// CreateInvite creates the inactive user and their invite in one transaction,
// then dispatches the notification. At most one unexpired, unaccepted invite
// may exist per user.
func (s *InviteService) CreateInvite(ctx context.Context, email string, role db_models.Role, inviterID uuid.UUID) (*response_models.CreateInviteResponse, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		log.Printf("invite duplicate check failed: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		pending, err := s.inviteRepo.FindPendingByUserID(ctx, existing.ID, time.Now())
		if err != nil {
			log.Printf("pending invite lookup failed: %v", err)
			return nil, utils.ErrDatabaseError
		}
		if pending != nil {
			return nil, utils.ErrDuplicateInvite
		}
		return nil, utils.ErrAlreadyRegistered
	}

	user := &db_models.User{
		Email:     email,
		Role:      role,
		IsActive:  false,
		InvitedBy: &inviterID,
	}
	user.ID = uuid.New()

	token, err := s.issuer.Issue(user.ID)
	if err != nil {
		log.Printf("invite token issuance failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	invite := &db_models.Invite{
		Token:     token,
		ExpiresAt: time.Now().Add(utils.InviteTokenTTL),
	}

	if err := s.inviteRepo.CreateUserAndInvite(ctx, user, invite); err != nil {
		log.Printf("invite creation failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	// Notification goes out only after the transaction committed. A failed
	// send never undoes the invite.
	if err := s.mail.SendInviteMail(email, token); err != nil {
		log.Printf("invite mail to %s failed: %v", email, err)
	}

	return &response_models.CreateInviteResponse{
		User:   *user,
		Invite: *invite,
	}, nil
}

// AcceptInvite activates the invited user, creates their member profile and
// consumes the invite, all atomically. The signed token's own expiry and the
// invite row's ExpiresAt are checked independently; both must hold.
func (s *InviteService) AcceptInvite(ctx context.Context, token string, request request_models.AcceptInviteRequest) (*db_models.MemberProfile, error) {
	if _, err := s.issuer.Verify(token); err != nil {
		return nil, utils.ErrInvalidToken
	}

	invite, err := s.inviteRepo.FindByToken(ctx, token)
	if err != nil {
		log.Printf("invite lookup failed: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if invite == nil || invite.ExpiredAt(time.Now()) || invite.Consumed() {
		return nil, utils.ErrInvalidOrExpiredToken
	}

	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Printf("password hashing failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	profile := &db_models.MemberProfile{
		MonthlyShareCommitment: request.MonthlyShareCommitment,
		PhoneNumber:            request.PhoneNumber,
		JoinDate:               time.Now(),
	}

	if err := s.inviteRepo.Accept(ctx, invite, passwordHash, profile); err != nil {
		if errors.Is(err, repositories.ErrInviteConsumed) {
			return nil, utils.ErrInvalidOrExpiredToken
		}
		log.Printf("invite acceptance failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return profile, nil
}

func (s *InviteService) ListAll(ctx context.Context) ([]db_models.Invite, error) {
	invites, err := s.inviteRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return invites, nil
}

func (s *InviteService) ListPending(ctx context.Context) ([]db_models.Invite, error) {
	invites, err := s.inviteRepo.ListPending(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return invites, nil
}

func (s *InviteService) ListAccepted(ctx context.Context) ([]db_models.Invite, error) {
	invites, err := s.inviteRepo.ListAccepted(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return invites, nil
}
