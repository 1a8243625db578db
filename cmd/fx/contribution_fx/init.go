package contribution_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"sharix/internal/repositories"
	"sharix/internal/services"
)

var Module = fx.Provide(
	provideContributionService, provideContributionRepo, provideProfileRepo)

func provideContributionRepo(db *gorm.DB) repositories.ContributionRepository {
	return repositories.NewContributionRepository(db)
}

func provideProfileRepo(db *gorm.DB) repositories.ProfileRepository {
	return repositories.NewProfileRepository(db)
}

func provideContributionService(
	contributionRepo repositories.ContributionRepository,
	profileRepo repositories.ProfileRepository,
	settingService services.ShareSettingServiceInterface,
	proofStore services.ProofStore,
) services.ContributionServiceInterface {
	return services.NewContributionService(contributionRepo, profileRepo, settingService, proofStore)
}
