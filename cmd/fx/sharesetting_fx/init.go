package sharesetting_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"sharix/internal/repositories"
	"sharix/internal/services"
)

var Module = fx.Provide(
	provideShareSettingService, provideShareSettingRepo)

func provideShareSettingRepo(db *gorm.DB) repositories.ShareSettingRepository {
	return repositories.NewShareSettingRepository(db)
}

func provideShareSettingService(settingRepo repositories.ShareSettingRepository) services.ShareSettingServiceInterface {
	return services.NewShareSettingService(settingRepo)
}
