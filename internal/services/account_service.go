package services

import (
	"context"
	"log"

	"sharix/internal/models/request_models"
	"sharix/internal/models/response_models"
	"sharix/internal/repositories"
	"sharix/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
}

type AccountService struct {
	userRepo repositories.UserRepository
}

func NewAccountService(userRepo repositories.UserRepository) AccountServiceInterface {
	return &AccountService{
		userRepo: userRepo,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {
	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		log.Printf("login lookup failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	// Invited-but-not-activated users have no password yet; treat them the
	// same as a wrong password to avoid leaking account state.
	if user == nil || !user.IsActive || user.PasswordHash == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(*user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.AccountLoginResponse{
		Token: token,
		Role:  string(user.Role),
	}, nil
}
