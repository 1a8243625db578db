package invite_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"sharix/internal/repositories"
	"sharix/internal/services"
	"sharix/pkg/utils"
)

var Module = fx.Provide(
	provideInviteService, provideInviteRepo)

func provideInviteRepo(db *gorm.DB) repositories.InviteRepository {
	return repositories.NewInviteRepository(db)
}

func provideInviteService(
	inviteRepo repositories.InviteRepository,
	userRepo repositories.UserRepository,
	issuer *utils.InviteTokenIssuer,
	mailService services.IMailService,
) services.InviteServiceInterface {
	return services.NewInviteService(inviteRepo, userRepo, issuer, mailService)
}
